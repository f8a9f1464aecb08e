// Package median implements sliding-window median filters.
//
// Apply works on a signal the caller has already padded, producing one output
// per full window. Filter is the streaming form, whose history before the
// first sample is the initial value. For even window lengths the median is
// the mean of the two middle order statistics.
package median
