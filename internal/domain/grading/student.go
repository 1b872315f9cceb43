package grading

import (
	"fmt"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student represents one learner's academic record.
//
// The grade history is append-only and insertion-ordered: it reflects the
// chronological order of entry, never a sorted view. The letter grade is a
// cached derived field, recomputed from the current average after every
// successful AddGrade and never mutated independently.
type Student struct {
	// id - unique identifier (UUID in string format), immutable.
	id string

	// name - display name, immutable after creation.
	name string

	// grades - append-only history of validated scores.
	grades []Grade

	// letter - cached derived letter grade; meaningless until the
	// first grade is recorded.
	letter LetterGrade
}

// NewStudent creates a student with an empty grade history and no letter
// grade. No side effects.
func NewStudent(id, name string) (*Student, error) {
	if id == "" {
		return nil, NewValidationError("NewStudent", ErrEmptyValue, "student id is required", nil)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("NewStudent", ErrEmptyValue, "student name is required", nil)
	}

	return &Student{
		id:     id,
		name:   name,
		grades: make([]Grade, 0),
	}, nil
}

// ID returns the student's unique identifier.
func (s *Student) ID() string {
	return s.id
}

// Name returns the student's display name.
func (s *Student) Name() string {
	return s.name
}

// ──────────────────────────────────────────────────────────────────────────────
// DOMAIN METHODS
// ──────────────────────────────────────────────────────────────────────────────

// AddGrade appends a validated score to the end of the grade history and
// recomputes the letter grade from the new average before returning.
//
// An out-of-range score fails with a ValidationError and leaves the record
// untouched: the grade is not appended and the letter grade is not
// recomputed. There is no partial mutation.
func (s *Student) AddGrade(score float64) error {
	grade, err := NewGrade(score)
	if err != nil {
		return err
	}

	s.grades = append(s.grades, grade)

	avg, _ := s.Average()
	s.letter = LetterGradeFor(avg)

	return nil
}

// Average returns the arithmetic mean of all recorded grades. The second
// return value is false when the history is empty: the average is
// undefined then, not zero. Pure, no side effects.
func (s *Student) Average() (float64, bool) {
	if len(s.grades) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, g := range s.grades {
		sum += float64(g)
	}
	return sum / float64(len(s.grades)), true
}

// LetterGrade returns the cached derived letter grade. The second return
// value is false when no grades have been recorded yet.
func (s *Student) LetterGrade() (LetterGrade, bool) {
	if len(s.grades) == 0 {
		return "", false
	}
	return s.letter, true
}

// Grades returns a copy of the grade history in insertion order.
func (s *Student) Grades() []Grade {
	out := make([]Grade, len(s.grades))
	copy(out, s.grades)
	return out
}

// GradeCount returns the number of recorded grades.
func (s *Student) GradeCount() int {
	return len(s.grades)
}

// String returns a short representation for logging.
func (s *Student) String() string {
	letter, ok := s.LetterGrade()
	if !ok {
		return fmt.Sprintf("Student{ID: %s, Name: %s, Grades: 0}", s.id, s.name)
	}
	return fmt.Sprintf("Student{ID: %s, Name: %s, Grades: %d, Letter: %s}", s.id, s.name, len(s.grades), letter)
}
