package grading

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrade_AcceptsRange(t *testing.T) {
	for _, score := range []float64{0, 0.5, 60, 99.999, 100} {
		g, err := NewGrade(score)
		assert.NoError(t, err)
		assert.Equal(t, score, g.Float64())
	}
}

func TestNewGrade_RejectsOutOfRange(t *testing.T) {
	for _, score := range []float64{-0.001, -1, 100.001, 150, 1000} {
		_, err := NewGrade(score)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrValueOutOfRange))
		assert.True(t, errors.Is(err, ErrValidation))
		assert.True(t, IsValidation(err))
	}
}

func TestLetterGradeFor_Boundaries(t *testing.T) {
	tests := []struct {
		average float64
		want    LetterGrade
	}{
		{100, LetterA},
		{90.0, LetterA},
		{89.999, LetterB},
		{80.0, LetterB},
		{79.999, LetterC},
		{70.0, LetterC},
		{69.999, LetterD},
		{60.0, LetterD},
		{59.999, LetterF},
		{0, LetterF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGradeFor(tt.average), "average %v", tt.average)
	}
}

func TestLetterGrade_IsPassing(t *testing.T) {
	assert.True(t, LetterA.IsPassing())
	assert.True(t, LetterD.IsPassing())
	assert.False(t, LetterF.IsPassing())
	assert.False(t, LetterGrade("X").IsPassing())
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("AddGrade", ErrValueOutOfRange, "grade must be between 0 and 100", 150.0)
	assert.Contains(t, err.Error(), "grading.AddGrade")
	assert.Contains(t, err.Error(), "150")
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}
