package check

// That wraps a value for checking. Each call starts an independent chain;
// no state survives from one That to the next.
func That[T any](value T) Checker[T] {
	return Checker[T]{value: value}
}

// Checker holds the checked value and the negation flag for the next check.
type Checker[T any] struct {
	value   T
	negated bool
}

// Not returns a new Checker over the same value with the negation flag
// flipped. The receiver is left untouched.
func (c Checker[T]) Not() Checker[T] {
	return Checker[T]{value: c.value, negated: !c.negated}
}

// Link is the handle returned by a successful check.
type Link[T any] struct {
	value T
}

// And continues the chain with a fresh, non-negated Checker over the
// original value.
func (l Link[T]) And() Checker[T] {
	return That(l.value)
}

// Execute runs one check. action encodes the positive logic: it must raise
// a *Failure when the value does not satisfy the check and return normally
// otherwise.
//
// Without negation a raised failure propagates unchanged. Under negation
// a raised failure is swallowed, and a normal return raises a *Failure
// carrying negatedFailureMessage instead, because the positive check held
// when it must not.
func (c Checker[T]) Execute(action func(), negatedFailureMessage string) Link[T] {
	if !c.negated {
		action()
		return Link[T]{value: c.value}
	}

	if !raised(action) {
		panic(NewFailure(negatedFailureMessage))
	}

	return Link[T]{value: c.value}
}

// raised reports whether action raised a *Failure. Any other panic is
// re-raised as is.
func raised(action func()) (failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Failure); !ok {
				panic(r)
			}
			failed = true
		}
	}()

	action()

	return false
}
