package solo

import (
	"github.com/ib-77/guards/pkg/guard"
)

func EqualTo[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input == other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

func NotEqualTo[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input != other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

func LessThan[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input < other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

func LessOrEqual[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input <= other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

func GreaterThan[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input > other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

func GreaterOrEqual[T guard.Ordered](input T, other T, errMsg string) guard.Result[T] {
	if input >= other {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

// Between passes values inside [lower, upper]. Inclusive counts a value
// sitting exactly on a bound as inside, Exclusive as not.
func Between[T guard.Ordered](input T, lower T, upper T, bound guard.Bound, errMsg string) guard.Result[T] {
	in := lower <= input && input <= upper
	if bound == guard.Exclusive {
		in = lower < input && input < upper
	}

	if in {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

// Outside passes values beyond [lower, upper]. The bound keeps its range
// meaning: under Exclusive the range does not own its bounds, so a value
// sitting exactly on a bound counts as outside and passes; under Inclusive
// the same value still belongs to the range and fails.
func Outside[T guard.Ordered](input T, lower T, upper T, bound guard.Bound, errMsg string) guard.Result[T] {
	out := input < lower || input > upper
	if bound == guard.Exclusive {
		out = input <= lower || input >= upper
	}

	if out {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}

// That guards with a caller-supplied condition. A nil condition passes.
func That[T any](input T, cond func(in T) bool, errMsg string) guard.Result[T] {
	if cond == nil || cond(input) {
		return guard.Pass(input)
	}
	return guard.Fail[T](errMsg)
}
