package fieldscan

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

//go:generate go tool stringer -type=OutcomeEnum -output=outcomeenum_string.go

type OutcomeEnum int

const (
	_ OutcomeEnum = iota // skip zero value, use it as a default (invalid) value for OutcomeEnum

	OutcomeEqual
	OutcomeFieldMismatch
	OutcomeFieldMissingOnActual
	OutcomeFieldMissingOnExpected

	// OutcomeTotal is a constant that represents the total number of outcomes defined
	OutcomeTotal = int(iota)
)

// Outcome classifies a structural comparison. Exactly one Kind holds;
// FieldName and the two values are set for the mismatch and missing-field
// kinds.
type Outcome struct {
	Kind          OutcomeEnum
	FieldName     string
	ActualValue   any
	ExpectedValue any
}

// allowUnexported lets go-cmp descend into unexported fields of any type.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Compare walks expected's declared fields in scan order and looks each one
// up anywhere in actual's hierarchy, stopping at the first difference.
//
// The comparison is asymmetric: fields of actual that expected does not
// declare are ignored, so Compare checks that actual covers expected's field
// set with equal values at those fields.
func Compare(actual, expected any) (Outcome, error) {
	expFields, err := Scan(expected)
	if err != nil {
		return Outcome{}, fmt.Errorf("expected operand: %w", err)
	}

	actFields, err := Scan(actual)
	if err != nil {
		return Outcome{}, fmt.Errorf("actual operand: %w", err)
	}

	// The most-derived occurrence of a name shadows deeper ones.
	byName := make(map[string]Field, len(actFields))
	for _, f := range actFields {
		if _, taken := byName[f.Name]; !taken {
			byName[f.Name] = f
		}
	}

	seen := make(map[string]struct{}, len(expFields))

	for _, ef := range expFields {
		if _, dup := seen[ef.Name]; dup {
			continue
		}
		seen[ef.Name] = struct{}{}

		af, ok := byName[ef.Name]
		if !ok {
			return Outcome{Kind: OutcomeFieldMissingOnActual, FieldName: ef.Name}, nil
		}

		av, ev := af.Value.Interface(), ef.Value.Interface()
		if !cmp.Equal(av, ev, allowUnexported) {
			return Outcome{
				Kind:          OutcomeFieldMismatch,
				FieldName:     ef.Name,
				ActualValue:   av,
				ExpectedValue: ev,
			}, nil
		}
	}

	return Outcome{Kind: OutcomeEqual}, nil
}

// Symmetric reports the first difference visible from either operand's
// field set: it runs Compare both ways, so a field declared on only one
// side always counts as a difference.
func Symmetric(actual, expected any) (Outcome, error) {
	outcome, err := Compare(actual, expected)
	if err != nil || outcome.Kind != OutcomeEqual {
		return outcome, err
	}

	reversed, err := Compare(expected, actual)
	if err != nil {
		return Outcome{}, err
	}

	return reversed.Reversed(), nil
}

// Reversed swaps the operand roles of an outcome.
func (o Outcome) Reversed() Outcome {
	r := Outcome{
		Kind:          o.Kind,
		FieldName:     o.FieldName,
		ActualValue:   o.ExpectedValue,
		ExpectedValue: o.ActualValue,
	}

	switch o.Kind {
	case OutcomeFieldMissingOnActual:
		r.Kind = OutcomeFieldMissingOnExpected
	case OutcomeFieldMissingOnExpected:
		r.Kind = OutcomeFieldMissingOnActual
	}

	return r
}
