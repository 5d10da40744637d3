// Package solo contains single-value, synchronous guards that operate on
// guard.Result[T]. Each function checks one condition against one value and
// reports the caller-supplied message verbatim when the condition fails.
//
// Highlights:
// - EqualTo/NotEqualTo: equality guards against another value
// - LessThan/LessOrEqual/GreaterThan/GreaterOrEqual: relational guards
// - Between/Outside: range guards with an inclusive or exclusive bound
// - That: guard with a caller-supplied condition
package solo
