package model

// Exam is one final-exam sitting for a course.
type Exam struct {
	ExamCode       string
	CourseCode     string
	CourseName     string
	Date           string // YYYY-MM-DD
	TimeSlot       string
	RoomIDs        []string
	StudentCount   int
	InvigilatorIDs []string
}

// ExamCSVRow flattens an Exam for export; list fields are comma-joined.
type ExamCSVRow struct {
	ExamCode     string `csv:"exam_code"`
	CourseCode   string `csv:"course_code"`
	CourseName   string `csv:"course_name"`
	Date         string `csv:"date"`
	TimeSlot     string `csv:"time_slot"`
	Rooms        string `csv:"rooms"`
	StudentCount int    `csv:"student_count"`
	Invigilators string `csv:"invigilators"`
}

// SeatingPlan maps seat numbers to student ids for one room of one exam.
// Partial when enrollment runs out before capacity does.
type SeatingPlan struct {
	ExamCode string
	RoomID   string
	Seats    map[int]string
}

// SeatingCSVRow is one filled seat in seating_plan.csv.
type SeatingCSVRow struct {
	ExamCode   string `csv:"exam_code"`
	RoomID     string `csv:"room_id"`
	SeatNumber int    `csv:"seat_number"`
	StudentID  string `csv:"student_id"`
}
