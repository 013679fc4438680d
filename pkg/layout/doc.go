// Package layout holds the in-memory model of a precomputed graph layout.
//
// # Overview
//
// A [Dataset] is an ordered node sequence plus an edge sequence. Nodes are
// identified by their position (dense 0-based indices), carry a 2-D position
// produced by an upstream force-directed layout, and a display label. Edges
// are (source, target, type) triples; they are stored directed but treated as
// undirected for degree counting and distance computation.
//
// A Dataset is loaded once (see package io), validated with
// [Dataset.Validate], and never mutated afterwards. Statistics and rendering
// only read it.
//
// # Degree
//
// [Dataset.Degrees] counts edge endpoints per node in a single pass over the
// edges. Every edge adds one to each endpoint, so a self-loop adds two to its
// node and the degree sum is always twice the edge count.
//
// [RankByDegree] orders node indices by degree descending with ties broken
// by ascending index, which gives label selection a stable order.
package layout
