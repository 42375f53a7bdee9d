package fieldscan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x int
	y int
}

type sizedPoint struct {
	point
	z int
}

func TestCompareEqual(t *testing.T) {
	t.Parallel()

	outcome, err := Compare(point{x: 2, y: 3}, point{x: 2, y: 3})
	require.NoError(t, err)
	assert.Equal(t, OutcomeEqual, outcome.Kind)
}

func TestCompareFirstMismatchInDeclarationOrder(t *testing.T) {
	t.Parallel()

	// Both fields differ; declaration order picks x.
	outcome, err := Compare(point{x: 2, y: 3}, point{x: 1, y: 9})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFieldMismatch, outcome.Kind)
	assert.Equal(t, "x", outcome.FieldName)
	assert.Equal(t, 2, outcome.ActualValue)
	assert.Equal(t, 1, outcome.ExpectedValue)
}

func TestCompareMissingFieldOnActual(t *testing.T) {
	t.Parallel()

	// expected declares z, actual does not.
	outcome, err := Compare(point{x: 2, y: 3}, sizedPoint{point: point{x: 2, y: 3}, z: 4})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFieldMissingOnActual, outcome.Kind)
	assert.Equal(t, "z", outcome.FieldName)
}

func TestCompareIgnoresExtraFieldsOnActual(t *testing.T) {
	t.Parallel()

	outcome, err := Compare(sizedPoint{point: point{x: 2, y: 3}, z: 4}, point{x: 2, y: 3})
	require.NoError(t, err)
	assert.Equal(t, OutcomeEqual, outcome.Kind)
}

func TestCompareEmbeddedLevelValues(t *testing.T) {
	t.Parallel()

	outcome, err := Compare(
		sizedPoint{point: point{x: 2, y: 3}, z: 4},
		sizedPoint{point: point{x: 2, y: 8}, z: 4},
	)
	require.NoError(t, err)

	assert.Equal(t, OutcomeFieldMismatch, outcome.Kind)
	assert.Equal(t, "y", outcome.FieldName)
}

func TestCompareShadowedFieldUsesMostDerived(t *testing.T) {
	t.Parallel()

	type shadow struct {
		point
		x string
	}

	// The outer x shadows point's x on both sides.
	outcome, err := Compare(
		shadow{point: point{x: 1, y: 3}, x: "same"},
		shadow{point: point{x: 2, y: 3}, x: "same"},
	)
	require.NoError(t, err)

	assert.Equal(t, OutcomeEqual, outcome.Kind)
}

func TestCompareNaNFieldNeverEqualsItself(t *testing.T) {
	t.Parallel()

	type withFloat struct {
		f float64
	}

	outcome, err := Compare(withFloat{f: math.NaN()}, withFloat{f: math.NaN()})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFieldMismatch, outcome.Kind)
	assert.Equal(t, "f", outcome.FieldName)
}

func TestCompareOperandErrors(t *testing.T) {
	t.Parallel()

	_, err := Compare(point{}, 42)
	require.ErrorIs(t, err, ErrNotAStruct)
	assert.Contains(t, err.Error(), "expected operand")

	_, err = Compare(42, point{})
	require.ErrorIs(t, err, ErrNotAStruct)
	assert.Contains(t, err.Error(), "actual operand")

	_, err = Compare(point{}, nil)
	assert.ErrorIs(t, err, ErrNilValue)
}

func TestSymmetric(t *testing.T) {
	t.Parallel()

	t.Run("equal both ways", func(t *testing.T) {
		t.Parallel()

		outcome, err := Symmetric(point{x: 2, y: 3}, point{x: 2, y: 3})
		require.NoError(t, err)
		assert.Equal(t, OutcomeEqual, outcome.Kind)
	})

	t.Run("field only on actual", func(t *testing.T) {
		t.Parallel()

		outcome, err := Symmetric(sizedPoint{point: point{x: 2, y: 3}, z: 4}, point{x: 2, y: 3})
		require.NoError(t, err)

		assert.Equal(t, OutcomeFieldMissingOnExpected, outcome.Kind)
		assert.Equal(t, "z", outcome.FieldName)
	})

	t.Run("field only on expected", func(t *testing.T) {
		t.Parallel()

		outcome, err := Symmetric(point{x: 2, y: 3}, sizedPoint{point: point{x: 2, y: 3}, z: 4})
		require.NoError(t, err)
		assert.Equal(t, OutcomeFieldMissingOnActual, outcome.Kind)
	})
}

func TestOutcomeReversed(t *testing.T) {
	t.Parallel()

	o := Outcome{Kind: OutcomeFieldMismatch, FieldName: "x", ActualValue: 1, ExpectedValue: 2}
	r := o.Reversed()

	assert.Equal(t, OutcomeFieldMismatch, r.Kind)
	assert.Equal(t, 2, r.ActualValue)
	assert.Equal(t, 1, r.ExpectedValue)

	assert.Equal(t, OutcomeFieldMissingOnExpected,
		Outcome{Kind: OutcomeFieldMissingOnActual}.Reversed().Kind)
	assert.Equal(t, OutcomeFieldMissingOnActual,
		Outcome{Kind: OutcomeFieldMissingOnExpected}.Reversed().Kind)
}

func TestOutcomeEnumString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OutcomeEqual", OutcomeEqual.String())
	assert.Equal(t, "OutcomeFieldMissingOnExpected", OutcomeFieldMissingOnExpected.String())
	assert.Equal(t, "OutcomeEnum(0)", OutcomeEnum(0).String())
}
