// Package command contains write operations (CQRS - Commands).
package command

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/grade-tracker/internal/domain/grading"
	"github.com/alem-hub/grade-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Adds a new student to the roster with an empty grade history.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data to enroll a new student.
type EnrollStudentCommand struct {
	// Name is the display name for the new student.
	Name string
}

// Validate validates the command.
func (c EnrollStudentCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("enroll_student: name is required")
	}
	return nil
}

// EnrollStudentResult contains the result of enrolling a student.
type EnrollStudentResult struct {
	// StudentID is the freshly minted ID of the new student.
	StudentID string

	// Name is the display name as stored on the roster.
	Name string
}

// EnrollStudentHandler enrolls students into the roster.
type EnrollStudentHandler struct {
	roster *grading.Roster
	log    *logger.Logger
}

// NewEnrollStudentHandler creates a new handler.
func NewEnrollStudentHandler(roster *grading.Roster, log *logger.Logger) *EnrollStudentHandler {
	return &EnrollStudentHandler{
		roster: roster,
		log:    log.With(logger.Component("enroll_student")),
	}
}

// Handle executes the command.
func (h *EnrollStudentHandler) Handle(cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	student, err := h.roster.Add(uuid.New().String(), cmd.Name)
	if err != nil {
		return nil, err
	}

	h.log.Info("student enrolled",
		logger.StudentID(student.ID()),
		logger.StudentName(student.Name()),
	)

	return &EnrollStudentResult{
		StudentID: student.ID(),
		Name:      student.Name(),
	}, nil
}
