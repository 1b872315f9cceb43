package grading

import "strings"

// Roster is the ordered, owning collection of student records. It holds
// each Student exclusively for the duration of the program; students are
// never deleted. The roster belongs to a single-threaded calling program,
// so access is not synchronized.
type Roster struct {
	students []*Student
	byID     map[string]*Student
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		students: make([]*Student, 0),
		byID:     make(map[string]*Student),
	}
}

// Add enrolls a new student under the given id and returns it. Enrollment
// order is preserved for iteration.
func (r *Roster) Add(id, name string) (*Student, error) {
	if _, exists := r.byID[id]; exists {
		return nil, ErrStudentAlreadyExists
	}

	student, err := NewStudent(id, name)
	if err != nil {
		return nil, err
	}

	r.students = append(r.students, student)
	r.byID[student.ID()] = student
	return student, nil
}

// FindByID returns the student with the given id, or ErrStudentNotFound.
func (r *Roster) FindByID(id string) (*Student, error) {
	student, ok := r.byID[id]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// FindByName returns the first enrolled student whose name matches,
// case-insensitively, or ErrStudentNotFound.
func (r *Roster) FindByName(name string) (*Student, error) {
	name = strings.TrimSpace(name)
	for _, s := range r.students {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, ErrStudentNotFound
}

// Students returns the enrolled students in enrollment order. The slice is
// a copy; the records themselves are shared.
func (r *Roster) Students() []*Student {
	out := make([]*Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len returns the number of enrolled students.
func (r *Roster) Len() int {
	return len(r.students)
}
