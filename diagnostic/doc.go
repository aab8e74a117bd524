// Package diagnostic provides the reporting side channel of the traversal
// engine: usage mistakes are reported here once and the failing call returns
// an error instead of unwinding.
//
// Key capabilities:
//   - Structured diagnostics carrying the operation, argument position and classified type
//   - A collecting reporter (Diagnostics) for tests and batch checks
//   - A logrus-backed reporter for processes
//   - Compact rendering of offending values
package diagnostic
