package scheduler

import (
	"math"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/atess/atess/internal/config"
	"github.com/atess/atess/pkg/model"
)

const examDateLayout = "2006-01-02"

// ExamAllocator assigns each course one final-exam sitting and packs enrolled
// students into room seats. Sittings cycle through the configured half-day
// slots, two per day, skipping weekends when advancing.
type ExamAllocator struct {
	calendar    config.Calendar
	rooms       []model.Room
	enrollments map[string][]string
	logger      *zap.Logger
}

// NewExamAllocator creates an allocator over the given rooms and enrollments.
func NewExamAllocator(calendar config.Calendar, rooms []model.Room, enrollments map[string][]string, logger *zap.Logger) *ExamAllocator {
	return &ExamAllocator{
		calendar:    calendar,
		rooms:       rooms,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Allocate schedules one sitting per course in input order, starting at the
// given date. Returns the exams and their seating plans.
func (a *ExamAllocator) Allocate(courses []model.Course, start time.Time) ([]model.Exam, []model.SeatingPlan) {
	lectureRooms := lo.Filter(a.rooms, func(r model.Room, _ int) bool {
		return r.Type == model.RoomLecture
	})

	current := start
	slotIndex := 0
	exams := make([]model.Exam, 0, len(courses))
	var plans []model.SeatingPlan

	for _, course := range courses {
		students := a.enrollments[course.CourseCode]
		assigned := assignExamRooms(lectureRooms, len(students))
		if len(assigned) == 0 {
			a.logger.Error("no lecture rooms for exam, skipping course",
				zap.String("course", course.CourseCode))
			continue
		}

		exam := model.Exam{
			ExamCode:       course.CourseCode + "-END",
			CourseCode:     course.CourseCode,
			CourseName:     course.CourseName,
			Date:           current.Format(examDateLayout),
			TimeSlot:       a.calendar.ExamSlots[slotIndex],
			RoomIDs:        lo.Map(assigned, func(r model.Room, _ int) string { return r.ID }),
			StudentCount:   len(students),
			InvigilatorIDs: []string{course.InstructorID},
		}
		exams = append(exams, exam)
		plans = append(plans, packSeating(exam.ExamCode, assigned, students)...)

		slotIndex++
		if slotIndex >= len(a.calendar.ExamSlots) {
			slotIndex = 0
			current = current.AddDate(0, 0, 1)
			for current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
				current = current.AddDate(0, 0, 1)
			}
		}
	}

	a.logger.Info("exam schedule generated",
		zap.Int("exams", len(exams)),
		zap.Int("seating_plans", len(plans)))
	return exams, plans
}

// assignExamRooms picks rooms from the front of the lecture-room list. The
// divisor is the capacity sum of the first two lecture rooms only, no matter
// how many rooms end up assigned.
func assignExamRooms(lectureRooms []model.Room, studentCount int) []model.Room {
	if len(lectureRooms) == 0 {
		return nil
	}
	head := lectureRooms
	if len(head) > 2 {
		head = head[:2]
	}
	capacity := lo.SumBy(head, func(r model.Room) int { return r.Capacity })
	needed := int(math.Ceil(float64(studentCount) / float64(capacity)))
	if needed < 1 {
		needed = 1
	}
	if needed > len(lectureRooms) {
		needed = len(lectureRooms)
	}
	return lectureRooms[:needed]
}

// packSeating fills seats 1..capacity room by room, in assignment order, from
// the enrollment list in list order. Students beyond total capacity are left
// unseated.
func packSeating(examCode string, rooms []model.Room, students []string) []model.SeatingPlan {
	plans := make([]model.SeatingPlan, 0, len(rooms))
	next := 0
	for _, room := range rooms {
		plan := model.SeatingPlan{
			ExamCode: examCode,
			RoomID:   room.ID,
			Seats:    make(map[int]string),
		}
		for seat := 1; seat <= room.Capacity && next < len(students); seat++ {
			plan.Seats[seat] = students[next]
			next++
		}
		plans = append(plans, plan)
	}
	return plans
}
