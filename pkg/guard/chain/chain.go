package chain

import (
	"github.com/ib-77/guards/pkg/guard"
	"github.com/ib-77/guards/pkg/guard/solo"
)

// Guard wraps a guard.Result to enable fluent chaining of conditions.
type Guard[T guard.Ordered] struct {
	res guard.Result[T]
}

// New creates a clean chain holding value.
func New[T guard.Ordered](value T) Guard[T] {
	return Start(guard.Pass(value))
}

// Start creates a chain from an existing guard.Result. A failed result
// short-circuits the chain from the first condition on.
func Start[T guard.Ordered](r guard.Result[T]) Guard[T] {
	return Guard[T]{res: r}
}

// Result returns the underlying guard.Result.
func (g Guard[T]) Result() guard.Result[T] {
	return g.res
}

func (g Guard[T]) EqualTo(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.EqualTo(g.res.Value(), other, errMsg))
}

func (g Guard[T]) NotEqualTo(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.NotEqualTo(g.res.Value(), other, errMsg))
}

func (g Guard[T]) LessThan(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.LessThan(g.res.Value(), other, errMsg))
}

func (g Guard[T]) LessOrEqual(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.LessOrEqual(g.res.Value(), other, errMsg))
}

func (g Guard[T]) GreaterThan(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.GreaterThan(g.res.Value(), other, errMsg))
}

func (g Guard[T]) GreaterOrEqual(other T, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.GreaterOrEqual(g.res.Value(), other, errMsg))
}

func (g Guard[T]) Between(lower T, upper T, bound guard.Bound, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.Between(g.res.Value(), lower, upper, bound, errMsg))
}

func (g Guard[T]) Outside(lower T, upper T, bound guard.Bound, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.Outside(g.res.Value(), lower, upper, bound, errMsg))
}

func (g Guard[T]) That(cond func(in T) bool, errMsg string) Guard[T] {
	if g.res.IsFailure() {
		return g
	}
	return g.keep(solo.That(g.res.Value(), cond, errMsg))
}

// Finalize consumes the chain: the held value when every condition passed,
// otherwise the zero value and the first failure.
func (g Guard[T]) Finalize() (T, error) {
	return g.res.Unwrap()
}

// keep returns the chain unchanged when r passed and adopts r otherwise,
// so a clean chain keeps its original result across passing conditions.
func (g Guard[T]) keep(r guard.Result[T]) Guard[T] {
	if r.IsSuccess() {
		return g
	}
	return Guard[T]{res: r}
}

// Finally collapses the chain into a final value via handlers.
func Finally[T guard.Ordered, U any](g Guard[T],
	onSuccess func(v T) U,
	onFailure func(err error) U) U {

	if g.res.IsSuccess() {
		return onSuccess(g.res.Value())
	}
	return onFailure(g.res.Err())
}
