// Package console is the terminal-facing interface layer. Presenters turn
// query results into display text; the reader parses raw input lines into
// numbers before they reach the grading core.
package console

import (
	"strconv"
	"strings"

	"github.com/alem-hub/grade-tracker/internal/application/query"
)

// Placeholder strings for undefined derived values.
const (
	NoGradesPlaceholder = "No grades yet"
	NoLetterPlaceholder = "N/A"
)

// ReportPresenter formats student report snapshots for terminal display.
type ReportPresenter struct{}

// NewReportPresenter creates a new report presenter.
func NewReportPresenter() *ReportPresenter {
	return &ReportPresenter{}
}

// FormatReport renders the multi-line report for one student: name, full
// grade history in insertion order, average (or a placeholder when no
// grades are recorded) and letter grade (or a placeholder). Deterministic
// and read-only; performs no output itself.
func (p *ReportPresenter) FormatReport(result *query.GetStudentReportResult) string {
	var sb strings.Builder

	sb.WriteString("Student: ")
	sb.WriteString(result.Name)
	sb.WriteString("\n")

	sb.WriteString("Grades: ")
	sb.WriteString(p.formatGrades(result.Grades))
	sb.WriteString("\n")

	sb.WriteString("Average: ")
	if result.Average != nil {
		sb.WriteString(formatNumber(*result.Average))
	} else {
		sb.WriteString(NoGradesPlaceholder)
	}
	sb.WriteString("\n")

	sb.WriteString("Letter Grade: ")
	if result.Letter != nil {
		sb.WriteString(result.Letter.String())
	} else {
		sb.WriteString(NoLetterPlaceholder)
	}

	return sb.String()
}

// formatGrades renders the grade history as "[85 92.5]".
func (p *ReportPresenter) formatGrades(grades []float64) string {
	parts := make([]string, 0, len(grades))
	for _, g := range grades {
		parts = append(parts, formatNumber(g))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// formatNumber renders a score without trailing zeros ("85", "88.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
