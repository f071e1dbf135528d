package model

// Room categories.
const (
	RoomLecture = "Lecture"
	RoomLab     = "Lab"
	RoomSeminar = "Seminar"
)

// Room is an immutable room record.
type Room struct {
	ID         string
	Capacity   int
	Type       string
	Accessible bool
}

// RoomCSV is the raw rooms.csv row.
type RoomCSV struct {
	ID            string `csv:"room_id"`
	CapacitySTR   string `csv:"capacity"`
	Type          string `csv:"type"`
	AccessibleSTR string `csv:"accessible"`
}
