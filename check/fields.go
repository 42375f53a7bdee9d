package check

import (
	"fluent-check/internal/fieldscan"
	"fluent-check/message"
)

// HasFieldsEqualToThose checks that the checked value carries every field
// the expected one declares, embedded levels included, with equal values.
// Unexported fields take part; extra fields on the checked value are
// ignored. The first differing field in declaration order is reported.
func (c Checker[T]) HasFieldsEqualToThose(expected any) Link[T] {
	return c.Execute(func() {
		outcome, err := fieldscan.Compare(c.value, expected)
		if err != nil {
			panic(NewFailure(message.For("The {0} cannot be compared field by field: "+err.Error()+".", c.value).
				Expected(expected).String()))
		}

		switch outcome.Kind {
		case fieldscan.OutcomeEqual:
		case fieldscan.OutcomeFieldMismatch:
			panic(NewFailure(message.For("The {0}'s field "+outcome.FieldName+" does not have the expected value.", outcome.ActualValue).
				Expected(outcome.ExpectedValue).String()))
		default:
			panic(NewFailure(message.For("The {0} has a field that is absent from the expected one: "+outcome.FieldName+".", c.value).
				Expected(expected).String()))
		}
	}, message.For("The {0} has fields equal to those of the expected one, whereas it must not.", c.value).
		Expected(expected).String())
}

// HasFieldsNotEqualToThose checks that the two field sets do not fully
// match: any differing field counts, and so does a field declared on only
// one side.
func (c Checker[T]) HasFieldsNotEqualToThose(expected any) Link[T] {
	return c.Execute(func() {
		outcome, err := fieldscan.Symmetric(c.value, expected)
		if err != nil {
			panic(NewFailure(message.For("The {0} cannot be compared field by field: "+err.Error()+".", c.value).
				Expected(expected).String()))
		}

		if outcome.Kind == fieldscan.OutcomeEqual {
			panic(NewFailure(message.For("The {0} has fields equal to those of the expected one, whereas it must not.", c.value).
				Expected(expected).String()))
		}
	}, message.For("The {0} has fields different from those of the expected one, whereas it must not.", c.value).
		Expected(expected).String())
}
