// Package chain provides a fluent accumulator over Result[T]
// for running several ordering guards against one value using solo primitives.
//
// A Guard[T] threads the value through a sequence of condition methods and
// records only the first failure: once a condition fails, later conditions
// are skipped without being evaluated and the failure message is kept as-is.
// The outcome stays internal until a terminal call collapses it.
//
// Key operations:
// - New/Start: begin a chain from a value or an existing Result[T]
// - EqualTo/NotEqualTo: equality conditions against another value
// - LessThan/LessOrEqual/GreaterThan/GreaterOrEqual: relational conditions
// - Between/Outside: range conditions with an inclusive or exclusive bound
// - That: a caller-supplied condition
// - Finalize: collapse the chain into the value or the first failure
// - Finally: collapse the chain into a final value via handlers
package chain
