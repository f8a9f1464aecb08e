// Package core holds the pieces shared by every filter runtime in this module:
// processing configuration, the error taxonomy, rounding rules for integer test
// vectors and small slice helpers.
//
// Nothing in this package keeps process-wide mutable state. Sample rate and
// block size travel in a [ProcessorConfig] value built from options.
package core
