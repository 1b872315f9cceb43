package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/grade-tracker/internal/application/query"
	"github.com/alem-hub/grade-tracker/internal/domain/grading"
)

func TestFormatReport_WithGrades(t *testing.T) {
	avg := 88.5
	letter := grading.LetterB
	result := &query.GetStudentReportResult{
		StudentID: "id-alice",
		Name:      "Alice",
		Grades:    []float64{85, 92},
		Average:   &avg,
		Letter:    &letter,
	}

	text := NewReportPresenter().FormatReport(result)

	assert.Equal(t,
		"Student: Alice\n"+
			"Grades: [85 92]\n"+
			"Average: 88.5\n"+
			"Letter Grade: B",
		text)
}

func TestFormatReport_NoGrades(t *testing.T) {
	result := &query.GetStudentReportResult{
		StudentID: "id-bob",
		Name:      "Bob",
		Grades:    []float64{},
	}

	text := NewReportPresenter().FormatReport(result)

	assert.Contains(t, text, "Student: Bob")
	assert.Contains(t, text, "Grades: []")
	assert.Contains(t, text, "Average: "+NoGradesPlaceholder)
	assert.Contains(t, text, "Letter Grade: "+NoLetterPlaceholder)
}

func TestFormatReport_Deterministic(t *testing.T) {
	roster := grading.NewRoster()
	student, err := roster.Add("id-alice", "Alice")
	require.NoError(t, err)
	require.NoError(t, student.AddGrade(85))
	require.NoError(t, student.AddGrade(92))

	handler := query.NewGetStudentReportHandler(roster)
	p := NewReportPresenter()

	first, err := handler.Handle(query.GetStudentReportQuery{StudentID: "id-alice"})
	require.NoError(t, err)
	second, err := handler.Handle(query.GetStudentReportQuery{StudentID: "id-alice"})
	require.NoError(t, err)

	assert.Equal(t, p.FormatReport(first), p.FormatReport(second),
		"report is a pure function of current student state")
}

func TestFormatReport_GradesInInsertionOrder(t *testing.T) {
	avg := 60.0
	letter := grading.LetterD
	result := &query.GetStudentReportResult{
		Name:    "Carol",
		Grades:  []float64{90, 30.5, 59.5},
		Average: &avg,
		Letter:  &letter,
	}

	text := NewReportPresenter().FormatReport(result)
	assert.Contains(t, text, "Grades: [90 30.5 59.5]")
}
