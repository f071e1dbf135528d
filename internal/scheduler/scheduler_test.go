package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atess/atess/internal/config"
	"github.com/atess/atess/pkg/model"
)

func testCalendar() config.Calendar {
	return config.Calendar{
		WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		TimeSlots: []string{
			"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
			"14:00-15:00", "15:00-16:00", "16:00-17:00",
		},
		LunchSlot: "12:00-13:00",
		ExamSlots: []string{"09:00-12:00", "14:00-17:00"},
	}
}

func testProfessors(ids ...string) map[string]model.Professor {
	professors := make(map[string]model.Professor, len(ids))
	for _, id := range ids {
		professors[id] = model.Professor{ID: id, Name: id, MaxHours: 18}
	}
	return professors
}

func TestFillCourses(t *testing.T) {
	logger := zap.NewNop()

	t.Run("places exactly L plus T sessions", func(t *testing.T) {
		rooms := []model.Room{{ID: "R1", Capacity: 60, Type: model.RoomLecture}}
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 2, T: 1, Credits: 4, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		require.Len(t, entries, 3)
		assert.Equal(t, "CS101-0", entries[0].SlotID)
		assert.Equal(t, "CS101-1", entries[1].SlotID)
		assert.Equal(t, "CS101-2", entries[2].SlotID)
		assert.Equal(t, model.SessionLecture, entries[0].SessionType)
		assert.Equal(t, model.SessionLecture, entries[1].SessionType)
		assert.Equal(t, model.SessionTutorial, entries[2].SessionType)
		assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday"},
			[]string{entries[0].Day, entries[1].Day, entries[2].Day})
		for _, e := range entries {
			assert.Equal(t, "R1", e.RoomID)
			assert.Equal(t, "09:00-10:00", e.TimeSlot)
		}
	})

	t.Run("skips lunch slot", func(t *testing.T) {
		cal := testCalendar()
		cal.TimeSlots = []string{"12:00-13:00", "14:00-15:00"}
		rooms := []model.Room{{ID: "R1", Capacity: 60, Type: model.RoomLecture}}
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 1, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(cal, testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		require.Len(t, entries, 1)
		assert.Equal(t, "14:00-15:00", entries[0].TimeSlot)
	})

	t.Run("at most one session per course per day", func(t *testing.T) {
		rooms := []model.Room{{ID: "R1", Capacity: 60, Type: model.RoomLecture}}
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 3, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		require.Len(t, entries, 3)
		days := make(map[string]int)
		for _, e := range entries {
			days[e.Day]++
		}
		for day, count := range days {
			assert.Equal(t, 1, count, "day %s", day)
		}
	})

	t.Run("lab room once lectures are exhausted", func(t *testing.T) {
		rooms := []model.Room{
			{ID: "R1", Capacity: 60, Type: model.RoomLecture},
			{ID: "L1", Capacity: 30, Type: model.RoomLab},
		}
		courses := []model.Course{
			{CourseCode: "CS102", CourseName: "Data Structures", L: 1, T: 1, P: 2, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		require.Len(t, entries, 2)
		assert.Equal(t, "R1", entries[0].RoomID)
		assert.Equal(t, model.SessionLecture, entries[0].SessionType)
		assert.Equal(t, "L1", entries[1].RoomID)
		assert.Equal(t, model.SessionTutorial, entries[1].SessionType)
	})

	t.Run("under-scheduled when days run out", func(t *testing.T) {
		rooms := []model.Room{{ID: "R1", Capacity: 60, Type: model.RoomLecture}}
		courses := []model.Course{
			{CourseCode: "CS103", CourseName: "Marathon", L: 6, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		// Five working days and a once-per-day rule cap the course at five.
		assert.Len(t, entries, 5)
	})

	t.Run("invalid course is skipped without aborting", func(t *testing.T) {
		rooms := []model.Room{{ID: "R1", Capacity: 60, Type: model.RoomLecture}}
		courses := []model.Course{
			{CourseCode: "GHOST1", CourseName: "Phantom", L: 2, InstructorID: "NOBODY", BatchID: "B1"},
			{CourseCode: "CS101", CourseName: "Programming", L: 1, InstructorID: "P1", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1"), rooms, logger)
		entries := s.FillCourses(courses)

		require.Len(t, entries, 1)
		assert.Equal(t, "CS101", entries[0].CourseCode)
	})

	t.Run("no double booking across courses", func(t *testing.T) {
		rooms := []model.Room{
			{ID: "R1", Capacity: 60, Type: model.RoomLecture},
			{ID: "R2", Capacity: 60, Type: model.RoomLecture},
		}
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 3, T: 1, InstructorID: "P1", BatchID: "B1"},
			{CourseCode: "CS102", CourseName: "Data Structures", L: 2, T: 1, InstructorID: "P1", BatchID: "B2"},
			{CourseCode: "MA101", CourseName: "Calculus", L: 3, T: 0, InstructorID: "P2", BatchID: "B1"},
		}

		s := New(testCalendar(), testProfessors("P1", "P2"), rooms, logger)
		entries := s.FillCourses(courses)

		valid, report := Verify(entries, courses, testCalendar().LunchSlot)
		assert.True(t, valid, report)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		rooms := []model.Room{
			{ID: "R1", Capacity: 60, Type: model.RoomLecture},
			{ID: "L1", Capacity: 30, Type: model.RoomLab},
		}
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 2, T: 1, InstructorID: "P1", BatchID: "B1"},
			{CourseCode: "CS102", CourseName: "Data Structures", L: 1, T: 1, P: 2, InstructorID: "P2", BatchID: "B1"},
		}

		first := New(testCalendar(), testProfessors("P1", "P2"), rooms, logger).FillCourses(courses)
		second := New(testCalendar(), testProfessors("P1", "P2"), rooms, logger).FillCourses(courses)

		assert.Equal(t, first, second)
	})
}

func TestVerify(t *testing.T) {
	t.Run("reports room double booking", func(t *testing.T) {
		entries := []model.TimetableEntry{
			{CourseCode: "CS101", Day: "Monday", TimeSlot: "09:00-10:00", RoomID: "R1", InstructorID: "P1", BatchID: "B1"},
			{CourseCode: "CS102", Day: "Monday", TimeSlot: "09:00-10:00", RoomID: "R1", InstructorID: "P2", BatchID: "B2"},
		}

		valid, report := Verify(entries, nil, "12:00-13:00")

		assert.False(t, valid)
		assert.Contains(t, report, "[FAIL]: Room collision check.")
	})

	t.Run("reports lunch slot breach", func(t *testing.T) {
		entries := []model.TimetableEntry{
			{CourseCode: "CS101", Day: "Monday", TimeSlot: "12:00-13:00", RoomID: "R1", InstructorID: "P1", BatchID: "B1"},
		}

		valid, report := Verify(entries, nil, "12:00-13:00")

		assert.False(t, valid)
		assert.Contains(t, report, "[FAIL]: Lunch slot check.")
	})

	t.Run("under-scheduling stays valid", func(t *testing.T) {
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 3, InstructorID: "P1", BatchID: "B1"},
		}
		entries := []model.TimetableEntry{
			{CourseCode: "CS101", Day: "Monday", TimeSlot: "09:00-10:00", RoomID: "R1", InstructorID: "P1", BatchID: "B1"},
		}

		valid, report := Verify(entries, courses, "12:00-13:00")

		assert.True(t, valid)
		assert.Contains(t, report, "[WARN]: Fully scheduled check.")
		assert.Contains(t, report, "CS101 placed 1 of 3 sessions")
	})

	t.Run("clean timetable passes all checks", func(t *testing.T) {
		courses := []model.Course{
			{CourseCode: "CS101", CourseName: "Programming", L: 1, InstructorID: "P1", BatchID: "B1"},
		}
		entries := []model.TimetableEntry{
			{CourseCode: "CS101", Day: "Monday", TimeSlot: "09:00-10:00", RoomID: "R1", InstructorID: "P1", BatchID: "B1"},
		}

		valid, report := Verify(entries, courses, "12:00-13:00")

		assert.True(t, valid)
		assert.NotContains(t, report, "[FAIL]")
		assert.NotContains(t, report, "[WARN]")
	})
}
