package grading

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Grade represents a single numeric score recorded for a student.
type Grade float64

// Grade boundaries. Scores outside this range are rejected at insertion
// time and never repaired after the fact.
const (
	MinGrade Grade = 0
	MaxGrade Grade = 100
)

// IsValid checks that the grade lies within the accepted range.
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// Float64 returns the underlying value.
func (g Grade) Float64() float64 {
	return float64(g)
}

// NewGrade creates a new Grade with validation.
func NewGrade(score float64) (Grade, error) {
	g := Grade(score)
	if !g.IsValid() {
		return 0, NewValidationError("NewGrade", ErrValueOutOfRange, "grade must be between 0 and 100", score)
	}
	return g, nil
}

// LetterGrade represents the derived letter classification of an average.
type LetterGrade string

const (
	LetterA LetterGrade = "A"
	LetterB LetterGrade = "B"
	LetterC LetterGrade = "C"
	LetterD LetterGrade = "D"
	LetterF LetterGrade = "F"
)

// IsValid checks that the letter grade is one of the known letters.
func (l LetterGrade) IsValid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD, LetterF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LetterGrade) String() string {
	return string(l)
}

// IsPassing returns true for any letter above F.
func (l LetterGrade) IsPassing() bool {
	return l.IsValid() && l != LetterF
}

// LetterGradeFor maps an average to its letter grade. The bands are
// evaluated top-down and the first matching band wins; the order of the
// cases carries the boundary behavior, so keep it as an ordered switch
// rather than independent range predicates.
func LetterGradeFor(average float64) LetterGrade {
	switch {
	case average >= 90:
		return LetterA
	case average >= 80:
		return LetterB
	case average >= 70:
		return LetterC
	case average >= 60:
		return LetterD
	default:
		return LetterF
	}
}
