// Package grading contains the grade-tracking domain model.
//
// This is the core of the system and has zero external dependencies. The
// package defines:
//
//   - Entities: Student, Roster
//   - Value Objects: Grade, LetterGrade
//   - Errors: ValidationError plus base errors for errors.Is() checks
//
// # Invariants
//
// Every grade in a student's history lies in [0, 100]; this is enforced at
// insertion time and never repaired afterwards. The grade history is
// append-only and insertion-ordered. The letter grade is derived: it is
// recomputed from the arithmetic mean after every successful AddGrade and
// is never set directly. Both the average and the letter grade are
// undefined (not zero) while the history is empty.
//
// # Usage
//
// A student is enrolled through the roster, which owns every record:
//
//	roster := NewRoster()
//	student, err := roster.Add(uuid.New().String(), "Alice")
//	if err != nil {
//	    return err
//	}
//
//	if err := student.AddGrade(85.0); err != nil {
//	    // out-of-range score; the record is untouched
//	}
//
//	if avg, ok := student.Average(); ok {
//	    letter, _ := student.LetterGrade()
//	    fmt.Println(avg, letter)
//	}
//
// The only failure mode is validation (a score outside [0, 100]); it is
// reported as an ordinary error value, is always recoverable by the
// caller, and must never abort the program.
package grading
