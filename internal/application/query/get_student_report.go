// Package query contains read operations (CQRS - Queries).
package query

import (
	"errors"

	"github.com/alem-hub/grade-tracker/internal/domain/grading"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT REPORT QUERY
// Produces a point-in-time snapshot of one student's record for display.
// The snapshot is a pure function of current student state: querying twice
// without an intervening mutation yields identical results.
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentReportQuery contains the parameters of the report query.
type GetStudentReportQuery struct {
	// StudentID is the internal ID of the student.
	StudentID string
}

// Validate validates the query parameters.
func (q GetStudentReportQuery) Validate() error {
	if q.StudentID == "" {
		return errors.New("get_student_report: student_id is required")
	}
	return nil
}

// GetStudentReportResult is a snapshot of one student's record.
type GetStudentReportResult struct {
	// StudentID is the internal ID of the student.
	StudentID string

	// Name is the display name.
	Name string

	// Grades is the full grade history in insertion order.
	Grades []float64

	// Average is the arithmetic mean; nil while the history is empty
	// (the average is undefined then, not zero).
	Average *float64

	// Letter is the derived letter grade; nil while the history is empty.
	Letter *grading.LetterGrade
}

// GetStudentReportHandler answers report queries against the roster.
type GetStudentReportHandler struct {
	roster *grading.Roster
}

// NewGetStudentReportHandler creates a new handler.
func NewGetStudentReportHandler(roster *grading.Roster) *GetStudentReportHandler {
	return &GetStudentReportHandler{roster: roster}
}

// Handle executes the query. Read-only, no side effects.
func (h *GetStudentReportHandler) Handle(q GetStudentReportQuery) (*GetStudentReportResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	student, err := h.roster.FindByID(q.StudentID)
	if err != nil {
		return nil, err
	}

	grades := student.Grades()
	result := &GetStudentReportResult{
		StudentID: student.ID(),
		Name:      student.Name(),
		Grades:    make([]float64, 0, len(grades)),
	}
	for _, g := range grades {
		result.Grades = append(result.Grades, g.Float64())
	}

	if avg, ok := student.Average(); ok {
		result.Average = &avg
	}
	if letter, ok := student.LetterGrade(); ok {
		l := letter
		result.Letter = &l
	}

	return result, nil
}
