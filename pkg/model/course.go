package model

// Session kinds for timetable entries.
const (
	SessionLecture   = "Lecture"
	SessionTutorial  = "Tutorial"
	SessionLab       = "Lab"
	SessionSelfStudy = "Self-Study"
)

// Course is an immutable course record. Occupancy state lives in the
// scheduler's ledger, never on the course itself.
type Course struct {
	CourseCode   string
	CourseName   string
	L            int // weekly lecture hours
	T            int // weekly tutorial hours
	P            int // weekly practical hours
	Credits      int
	InstructorID string
	BatchID      string
}

// TotalSessions is the number of weekly sessions the scheduler must place.
func (c Course) TotalSessions() int {
	return c.L + c.T
}

// NeedsLab reports whether the course has practical hours.
func (c Course) NeedsLab() bool {
	return c.P > 0
}

// CourseCSV is the raw courses.csv row. Integer fields stay as strings so the
// loader can tell a missing value apart from zero.
type CourseCSV struct {
	CourseCode   string `csv:"course_code"`
	CourseName   string `csv:"course_name"`
	LectureSTR   string `csv:"L"`
	TutorialSTR  string `csv:"T"`
	PracticalSTR string `csv:"P"`
	CreditsSTR   string `csv:"credits"`
	InstructorID string `csv:"instructor_id"`
	BatchID      string `csv:"batch_id"`
}
