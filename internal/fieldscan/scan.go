package fieldscan

import (
	"errors"
	"reflect"
	"unsafe"
)

var (
	ErrNilValue   = errors.New("cannot scan fields of a nil value")
	ErrNotAStruct = errors.New("cannot scan fields of a non-struct value")
)

// Field is one declared instance field of a scanned struct.
type Field struct {
	// Name of the field as declared.
	Name string
	// Level is 0 for the outermost struct and grows by one per embedded
	// struct level.
	Level int
	// Value of the field, readable even when the field is unexported.
	Value reflect.Value
}

// Scan enumerates the declared instance fields of v, pointers dereferenced
// first. Level 0 holds the outer struct's non-embedded fields in declaration
// order; each embedded struct contributes its fields at the next level.
func Scan(v any) ([]Field, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, ErrNilValue
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, ErrNotAStruct
	}

	var fields []Field

	level := []reflect.Value{addressable(rv)}
	for depth := 0; len(level) > 0; depth++ {
		var next []reflect.Value

		for _, sv := range level {
			st := sv.Type()
			for i := 0; i < st.NumField(); i++ {
				ft := st.Field(i)
				fv := readable(sv.Field(i))

				if ft.Anonymous {
					ev := fv
					if ev.Kind() == reflect.Ptr && !ev.IsNil() {
						ev = ev.Elem()
					}
					if ev.Kind() == reflect.Struct {
						next = append(next, ev)
						continue
					}
				}

				fields = append(fields, Field{Name: ft.Name, Level: depth, Value: fv})
			}
		}

		level = next
	}

	return fields, nil
}

// addressable returns sv itself or an addressable copy of it, so that
// unexported fields can be reached through their addresses.
func addressable(sv reflect.Value) reflect.Value {
	if sv.CanAddr() {
		return sv
	}

	cp := reflect.New(sv.Type()).Elem()
	cp.Set(sv)

	return cp
}

// readable lifts the read restriction on an unexported field. The returned
// value aliases the same storage and must never be written through.
func readable(fv reflect.Value) reflect.Value {
	if fv.CanInterface() {
		return fv
	}

	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
}
