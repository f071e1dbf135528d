package model

// EnrollmentCSV is the raw students.csv row. Row order within a course defines
// seating order.
type EnrollmentCSV struct {
	CourseCode string `csv:"course_code"`
	StudentID  string `csv:"student_id"`
}
