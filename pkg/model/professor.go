package model

// Professor is an immutable instructor record.
type Professor struct {
	ID         string
	Name       string
	Department string
	MaxHours   int // weekly hour cap
}

// ProfessorCSV is the raw professors.csv row. Department and max_hours are
// optional columns.
type ProfessorCSV struct {
	ID          string `csv:"prof_id"`
	Name        string `csv:"name"`
	Department  string `csv:"department"`
	MaxHoursSTR string `csv:"max_hours"`
}
