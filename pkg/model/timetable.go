package model

// TimetableEntry is one committed weekly session. Entries are created by the
// session scheduler and never mutated afterwards. The struct doubles as the
// timetable.csv row.
type TimetableEntry struct {
	SlotID       string `csv:"slot_id"`
	Day          string `csv:"day"`
	TimeSlot     string `csv:"time_slot"`
	CourseCode   string `csv:"course_code"`
	CourseName   string `csv:"course_name"`
	RoomID       string `csv:"room_id"`
	InstructorID string `csv:"instructor_id"`
	BatchID      string `csv:"batch_id"`
	SessionType  string `csv:"session_type"`
}
