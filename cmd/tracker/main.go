// Package main - entry point for the interactive grade tracker.
//
// The program owns the roster and the console: it reads student names and
// candidate grades line by line from standard input, parses them, and
// drives the grading core through command/query handlers. The core itself
// never touches the console.
//
// The architecture follows the layering used across alem-hub projects:
//   - Domain: pure grading model, no external dependencies
//   - Application: use case handlers (Commands/Queries)
//   - Interface: console presenter and input reader
package main

import (
	"fmt"
	"os"

	"github.com/alem-hub/grade-tracker/internal/application/command"
	"github.com/alem-hub/grade-tracker/internal/application/query"
	"github.com/alem-hub/grade-tracker/internal/domain/grading"
	"github.com/alem-hub/grade-tracker/internal/interface/console"
	"github.com/alem-hub/grade-tracker/pkg/logger"
)

func main() {
	// Logs go to stderr so reports on stdout stay clean.
	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.LevelWarn,
	})

	roster := grading.NewRoster()

	enroll := command.NewEnrollStudentHandler(roster, log)
	record := command.NewRecordGradeHandler(roster, log)
	report := query.NewGetStudentReportHandler(roster)

	presenter := console.NewReportPresenter()
	reader := console.NewScoreReader(os.Stdin)

	fmt.Println("Grade Tracker")
	fmt.Println("Enter a student name to begin, or 'quit' to exit.")

	for {
		fmt.Print("\nStudent name: ")
		name, ok := reader.ReadLine()
		if !ok || name == "quit" {
			break
		}
		if name == "" {
			continue
		}

		enrolled, err := enroll.Handle(command.EnrollStudentCommand{Name: name})
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		enterGrades(reader, record, enrolled.StudentID)

		result, err := report.Handle(query.GetStudentReportQuery{StudentID: enrolled.StudentID})
		if err != nil {
			log.Error("report failed", logger.StudentID(enrolled.StudentID), logger.Err(err))
			continue
		}

		fmt.Println()
		fmt.Println(presenter.FormatReport(result))
	}

	printSummary(roster, report, presenter)
}

// enterGrades reads candidate grades until a blank line or end of input.
// A parse failure or an out-of-range score is reported and skipped; the
// caller keeps prompting. Neither aborts the program.
func enterGrades(reader *console.ScoreReader, record *command.RecordGradeHandler, studentID string) {
	for {
		fmt.Print("Enter grade (blank to finish): ")
		line, ok := reader.ReadLine()
		if !ok || line == "" {
			return
		}

		score, err := console.ParseScore(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		if _, err := record.Handle(command.RecordGradeCommand{StudentID: studentID, Score: score}); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

// printSummary prints the final report for every enrolled student, in
// enrollment order.
func printSummary(roster *grading.Roster, report *query.GetStudentReportHandler, presenter *console.ReportPresenter) {
	if roster.Len() == 0 {
		return
	}

	fmt.Println("\n=== Final Reports ===")
	for _, student := range roster.Students() {
		result, err := report.Handle(query.GetStudentReportQuery{StudentID: student.ID()})
		if err != nil {
			continue
		}
		fmt.Println()
		fmt.Println(presenter.FormatReport(result))
	}
}
