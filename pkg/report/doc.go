// Package report computes the summary statistics printed for a layout.
//
// [Compute] makes one pass per metric over a validated [layout.Dataset]:
//
//   - coordinate ranges, means and population standard deviations
//   - NaN and Inf flags, reported as a sanity gate on upstream layout quality
//   - degree distribution (maximum, degree-0 and degree-1 counts)
//   - overlap count: rounded positions (one decimal) shared by several nodes
//   - pairwise distances over a capped prefix sample of the nodes
//   - exact edge lengths
//   - edge counts per category
//
// The pairwise sample takes all pairs among the first [DefaultSampleLimit]
// nodes. It is not a random sample: when the input is ordered by degree or
// cluster the figures are biased accordingly. It exists to keep the cost
// quadratic in the cap, not in the node count.
//
// [Report.WriteTo] renders the fixed sequence of labeled lines. The output is
// deterministic for a given dataset.
package report
