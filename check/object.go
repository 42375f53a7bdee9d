package check

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"fluent-check/message"
)

// allowUnexported lets go-cmp descend into unexported fields of any type.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// IsSameReferenceAs checks that the checked value and expected are the very
// same instance.
func (c Checker[T]) IsSameReferenceAs(expected any) Link[T] {
	return c.Execute(func() {
		if !sameReference(c.value, expected) {
			panic(NewFailure(message.For("The {0} must be the same instance than expected one.", c.value).
				Expected(expected).String()))
		}
	}, message.For("The {0} must have be an instance distinct from expected one.", c.value).
		Expected(expected).String())
}

// IsDistinctFrom checks that the checked value and expected are different
// instances.
func (c Checker[T]) IsDistinctFrom(expected any) Link[T] {
	return c.Execute(func() {
		if sameReference(c.value, expected) {
			panic(NewFailure(message.For("The {0} must have be an instance distinct from expected one.", c.value).
				Expected(expected).String()))
		}
	}, message.For("The {0} must be the same instance than expected one.", c.value).
		Expected(expected).String())
}

// IsEqualTo checks deep value equality, unexported fields included.
func (c Checker[T]) IsEqualTo(expected any) Link[T] {
	return c.Execute(func() {
		if !cmp.Equal(c.value, expected, allowUnexported) {
			panic(NewFailure(message.For("The {0} is different from the expected one.", c.value).
				Expected(expected).String()))
		}
	}, message.For("The {0} is equal to the expected one, whereas it must not.", c.value).
		Expected(expected).Label("different from:").String())
}

// IsNotEqualTo checks deep value inequality, unexported fields included.
func (c Checker[T]) IsNotEqualTo(expected any) Link[T] {
	return c.Execute(func() {
		if cmp.Equal(c.value, expected, allowUnexported) {
			panic(NewFailure(message.For("The {0} is equal to the expected one, whereas it must not.", c.value).
				Expected(expected).Label("different from:").String()))
		}
	}, message.For("The {0} is different from the expected one.", c.value).
		Expected(expected).String())
}

// sameReference reports instance identity: pointer equality for
// reference-like kinds, plain equality for comparable values.
func sameReference(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return false
	}

	switch av.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	default:
		return av.Comparable() && bv.Comparable() && a == b
	}
}
