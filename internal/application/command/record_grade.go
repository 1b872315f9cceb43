package command

import (
	"errors"

	"github.com/alem-hub/grade-tracker/internal/domain/grading"
	"github.com/alem-hub/grade-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// Appends a validated score to a student's grade history. The derived
// letter grade is recomputed synchronously before the handler returns.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand contains the data to record a grade.
type RecordGradeCommand struct {
	// StudentID is the internal ID of the student.
	StudentID string

	// Score is the candidate grade. Already parsed: raw input never
	// reaches this layer. Range validation belongs to the domain.
	Score float64
}

// Validate validates the command.
func (c RecordGradeCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("record_grade: student_id is required")
	}
	return nil
}

// RecordGradeResult contains the result of recording a grade.
type RecordGradeResult struct {
	// StudentID is the internal ID of the student.
	StudentID string

	// Score is the recorded score.
	Score float64

	// GradeCount is the history length after the append.
	GradeCount int

	// Average is the recomputed arithmetic mean.
	Average float64

	// Letter is the recomputed letter grade.
	Letter grading.LetterGrade
}

// RecordGradeHandler records grades against roster students.
type RecordGradeHandler struct {
	roster *grading.Roster
	log    *logger.Logger
}

// NewRecordGradeHandler creates a new handler.
func NewRecordGradeHandler(roster *grading.Roster, log *logger.Logger) *RecordGradeHandler {
	return &RecordGradeHandler{
		roster: roster,
		log:    log.With(logger.Component("record_grade")),
	}
}

// Handle executes the command. A validation failure (score out of range)
// is returned to the caller and leaves the student record unchanged; the
// caller decides whether to re-prompt or skip.
func (h *RecordGradeHandler) Handle(cmd RecordGradeCommand) (*RecordGradeResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	student, err := h.roster.FindByID(cmd.StudentID)
	if err != nil {
		return nil, err
	}

	if err := student.AddGrade(cmd.Score); err != nil {
		h.log.Warn("grade rejected",
			logger.StudentID(student.ID()),
			logger.Score(cmd.Score),
			logger.Err(err),
		)
		return nil, err
	}

	avg, _ := student.Average()
	letter, _ := student.LetterGrade()

	h.log.Info("grade recorded",
		logger.StudentID(student.ID()),
		logger.Score(cmd.Score),
		logger.Average(avg),
		logger.Letter(letter.String()),
	)

	return &RecordGradeResult{
		StudentID:  student.ID(),
		Score:      cmd.Score,
		GradeCount: student.GradeCount(),
		Average:    avg,
		Letter:     letter,
	}, nil
}
