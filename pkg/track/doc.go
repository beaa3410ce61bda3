// Package track computes the connector segments between 2 to 4 anchor
// points and keeps them current while anchor positions arrive from a host
// layout pass.
//
// Segments are enumerated over every unordered pair (i, j) with i < j,
// outer loop over i, inner loop over j. Position k in any returned slice
// is the k-th pair of that enumeration; see PairIndex.
//
// Positions are joined behind a per-generation barrier: SetAnchors starts
// a new generation, ReportAnchorPosition fills it in, and the segments are
// recomputed exactly once when the last anchor of the generation reports.
// Reports tagged with an older generation are dropped.
package track
