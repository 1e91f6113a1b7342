// Package signal provides the immutable time-domain Signal value and a
// deterministic Generator for test and calibration signals.
//
// A Signal pairs an ordered sequence of real samples with a positive sample
// rate in Hz. Nothing in the package mutates a Signal after construction:
// operations such as Rescale and Normalize return new values, and accessors
// that expose samples hand out copies.
package signal
