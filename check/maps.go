package check

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"fluent-check/message"
)

// ContainsKey checks that the checked map holds the given key. Works on any
// map through reflection, so untyped any-keyed maps are covered too.
func (c Checker[T]) ContainsKey(key any) Link[T] {
	return c.Execute(func() {
		m := c.mapValue()
		if !mapHasKey(m, key) {
			panic(NewFailure(message.For("The {0} does not contain the expected key.", c.value).
				Expected(key).String()))
		}
	}, message.For("The {0} does contain the given key, whereas it must not.", c.value).
		Expected(key).String())
}

// ContainsValue checks that the checked map holds the given value under any
// key.
func (c Checker[T]) ContainsValue(value any) Link[T] {
	return c.Execute(func() {
		m := c.mapValue()
		if !mapHasValue(m, value) {
			panic(NewFailure(message.For("The {0} does not contain the expected value.", c.value).
				Expected(value).String()))
		}
	}, message.For("The {0} does contain the given value, whereas it must not.", c.value).
		Expected(value).String())
}

// pair renders a key/value couple in expected-value blocks.
type pair struct {
	Key   any
	Value any
}

// ContainsPair checks that the checked map maps the given key to the given
// value.
func (c Checker[T]) ContainsPair(key, value any) Link[T] {
	return c.Execute(func() {
		m := c.mapValue()
		if !mapHasPair(m, key, value) {
			panic(NewFailure(message.For("The {0} does not contain the expected key/value pair.", c.value).
				Expected(pair{Key: key, Value: value}).String()))
		}
	}, message.For("The {0} does contain the given key/value pair, whereas it must not.", c.value).
		Expected(pair{Key: key, Value: value}).String())
}

// mapValue reflects the checked value and raises a misuse failure when it
// is not a map. One error channel only, so negation stays composable.
func (c Checker[T]) mapValue() reflect.Value {
	rv := reflect.ValueOf(c.value)
	if rv.Kind() != reflect.Map {
		panic(NewFailure(message.For("The {0} is not a map.", c.value).String()))
	}

	return rv
}

func mapHasKey(m reflect.Value, key any) bool {
	for it := m.MapRange(); it.Next(); {
		if cmp.Equal(it.Key().Interface(), key, allowUnexported) {
			return true
		}
	}

	return false
}

func mapHasValue(m reflect.Value, value any) bool {
	for it := m.MapRange(); it.Next(); {
		if cmp.Equal(it.Value().Interface(), value, allowUnexported) {
			return true
		}
	}

	return false
}

func mapHasPair(m reflect.Value, key, value any) bool {
	for it := m.MapRange(); it.Next(); {
		if cmp.Equal(it.Key().Interface(), key, allowUnexported) {
			return cmp.Equal(it.Value().Interface(), value, allowUnexported)
		}
	}

	return false
}
