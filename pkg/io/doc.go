// Package io reads precomputed graph layouts from JSON.
//
// # JSON Format
//
// The input is one object with two arrays:
//
//	{
//	  "nodes": [
//	    {"x": 12.5, "y": -3.25, "label": "Shoegaze"},
//	    {"x": 10.0, "y": -1.0, "label": "Dream pop"}
//	  ],
//	  "edges": [
//	    [0, 1, 0]
//	  ]
//	}
//
// Node identity is the position in "nodes". Each edge is a
// [source, target, type] triple of integers; anything else is a parse error.
//
// A null coordinate is read as NaN. The layout generator serializes
// non-finite floats as null, so such layouts load and are flagged by the
// statistics report instead of failing to parse.
//
// # Validation
//
// [ReadJSON] validates edge endpoints after decoding, so a returned
// [layout.Dataset] is always safe to index. Failures carry codes from
// package errors: FILE_NOT_FOUND, PARSE_ERROR, INDEX_OUT_OF_RANGE.
package io
