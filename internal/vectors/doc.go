// Package vectors holds the catalog of reference filter cases and renders
// their outputs as Go literal source, so the expected values in tests come
// from the evaluation kernel rather than from hand calculation.
package vectors
