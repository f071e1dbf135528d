package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/atess/atess/internal/config"
	"github.com/atess/atess/pkg/model"
)

// Scheduler places weekly course sessions into the calendar grid using greedy
// first-fit: days in calendar order, then slots in calendar order, then rooms
// in input order. Earlier commitments are never undone.
type Scheduler struct {
	calendar   config.Calendar
	professors map[string]model.Professor
	rooms      []model.Room
	ledger     *Ledger
	logger     *zap.Logger

	// courseDays tracks course_code-day keys for the once-per-day rule.
	courseDays map[string]bool
}

// New creates a scheduler with an empty ledger.
func New(calendar config.Calendar, professors map[string]model.Professor, rooms []model.Room, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		calendar:   calendar,
		professors: professors,
		rooms:      rooms,
		ledger:     NewLedger(),
		logger:     logger,
		courseDays: make(map[string]bool),
	}
}

// Ledger exposes the occupancy state, mainly for inspection in tests.
func (s *Scheduler) Ledger() *Ledger {
	return s.ledger
}

// FillCourses tries to assign a time and room for all sessions of all valid
// courses, in input order, and returns the committed entries. A course that
// cannot be fully placed is left under-scheduled; no error is raised.
func (s *Scheduler) FillCourses(courses []model.Course) []model.TimetableEntry {
	entries := make([]model.TimetableEntry, 0, len(courses))
	for _, course := range courses {
		if !ValidateCourse(course, s.professors, s.logger) {
			continue
		}
		entries = append(entries, s.scheduleCourse(course)...)
	}
	s.logger.Info("timetable generated", zap.Int("entries", len(entries)))
	return entries
}

func (s *Scheduler) scheduleCourse(course model.Course) []model.TimetableEntry {
	needed := course.TotalSessions()
	scheduled := 0
	var entries []model.TimetableEntry

	for _, day := range s.calendar.WorkingDays {
		if scheduled >= needed {
			break
		}
		dayKey := course.CourseCode + "-" + day
		if s.courseDays[dayKey] {
			continue
		}

		for _, slot := range s.calendar.TimeSlots {
			if slot == s.calendar.LunchSlot {
				continue
			}
			if !s.ledger.IsBatchFree(course.BatchID, day, slot) {
				continue
			}
			if !s.ledger.IsProfessorFree(course.InstructorID, day, slot) {
				continue
			}

			roomType := model.RoomLecture
			if course.NeedsLab() && scheduled >= course.L {
				roomType = model.RoomLab
			}
			room := s.findRoom(day, slot, roomType)
			if room == nil {
				continue
			}

			sessionType := model.SessionTutorial
			if scheduled < course.L {
				sessionType = model.SessionLecture
			}
			entries = append(entries, model.TimetableEntry{
				SlotID:       fmt.Sprintf("%s-%d", course.CourseCode, scheduled),
				Day:          day,
				TimeSlot:     slot,
				CourseCode:   course.CourseCode,
				CourseName:   course.CourseName,
				RoomID:       room.ID,
				InstructorID: course.InstructorID,
				BatchID:      course.BatchID,
				SessionType:  sessionType,
			})

			// Commit only after every precondition passed; there is no undo.
			s.ledger.MarkRoomBusy(room.ID, day, slot)
			s.ledger.MarkProfessorBusy(course.InstructorID, day, slot)
			s.ledger.MarkBatchBusy(course.BatchID, day, slot)
			s.courseDays[dayKey] = true
			scheduled++
			break // at most one session per course per day
		}
	}

	if scheduled < needed {
		s.logger.Warn("course under-scheduled",
			zap.String("course", course.CourseCode),
			zap.Int("placed", scheduled),
			zap.Int("needed", needed))
	}
	return entries
}

// findRoom returns the first free room of the wanted category, in input order.
func (s *Scheduler) findRoom(day string, slot string, roomType string) *model.Room {
	for i := range s.rooms {
		r := &s.rooms[i]
		if r.Type != roomType {
			continue
		}
		if !s.ledger.IsRoomFree(r.ID, day, slot) {
			continue
		}
		return r
	}
	return nil
}
