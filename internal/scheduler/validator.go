package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/atess/atess/pkg/model"
)

// ValidateCourse rejects malformed courses before scheduling. A rejection is
// logged and the course is skipped; the run continues.
func ValidateCourse(course model.Course, professors map[string]model.Professor, logger *zap.Logger) bool {
	if _, ok := professors[course.InstructorID]; !ok {
		logger.Error("unknown instructor, skipping course",
			zap.String("course", course.CourseCode),
			zap.String("instructor", course.InstructorID))
		return false
	}
	if course.L < 0 || course.T < 0 || course.P < 0 {
		logger.Error("negative hour counts, skipping course",
			zap.String("course", course.CourseCode),
			zap.Int("L", course.L),
			zap.Int("T", course.T),
			zap.Int("P", course.P))
		return false
	}
	return true
}

// Verify checks a generated timetable for collisions and rule breaches.
// Returns false and a report for invalid timetables. Under-scheduled courses
// are listed in the report but do not make the timetable invalid.
func Verify(entries []model.TimetableEntry, courses []model.Course, lunchSlot string) (bool, string) {
	var message string
	valid := true
	hasRoomCollision := false
	hasInstructorCollision := false
	hasBatchCollision := false
	hasDayBreach := false
	hasLunchBreach := false

	roomSeen := make(map[string]bool)
	instructorSeen := make(map[string]bool)
	batchSeen := make(map[string]bool)
	courseDaySeen := make(map[string]bool)
	perCourse := make(map[string]int)

	for _, e := range entries {
		perCourse[e.CourseCode]++
		if key := slotKey(e.RoomID, e.Day, e.TimeSlot); roomSeen[key] {
			valid = false
			hasRoomCollision = true
			message += "- Room " + e.RoomID + " double-booked at " + e.Day + " " + e.TimeSlot + "\n"
		} else {
			roomSeen[key] = true
		}
		if key := slotKey(e.InstructorID, e.Day, e.TimeSlot); instructorSeen[key] {
			valid = false
			hasInstructorCollision = true
			message += "- Instructor " + e.InstructorID + " double-booked at " + e.Day + " " + e.TimeSlot + "\n"
		} else {
			instructorSeen[key] = true
		}
		if key := slotKey(e.BatchID, e.Day, e.TimeSlot); batchSeen[key] {
			valid = false
			hasBatchCollision = true
			message += "- Batch " + e.BatchID + " double-booked at " + e.Day + " " + e.TimeSlot + "\n"
		} else {
			batchSeen[key] = true
		}
		if key := e.CourseCode + "-" + e.Day; courseDaySeen[key] {
			valid = false
			hasDayBreach = true
			message += "- Course " + e.CourseCode + " scheduled twice on " + e.Day + "\n"
		} else {
			courseDaySeen[key] = true
		}
		if e.TimeSlot == lunchSlot {
			valid = false
			hasLunchBreach = true
			message += "- Course " + e.CourseCode + " scheduled in lunch slot on " + e.Day + "\n"
		}
	}

	underScheduled := 0
	var underScheduledList string
	for _, c := range courses {
		if perCourse[c.CourseCode] < c.TotalSessions() {
			underScheduled++
			underScheduledList += fmt.Sprintf("    %s placed %d of %d sessions\n",
				c.CourseCode, perCourse[c.CourseCode], c.TotalSessions())
		}
	}
	if underScheduled > 0 {
		message += fmt.Sprintf("- There are %d under-scheduled courses:\n", underScheduled)
		message += underScheduledList
	}

	if underScheduled > 0 {
		message = "[WARN]: Fully scheduled check.\n" + message
	} else {
		message = "[  OK]: Fully scheduled check.\n" + message
	}
	if hasLunchBreach {
		message = "[FAIL]: Lunch slot check.\n" + message
	} else {
		message = "[  OK]: Lunch slot check.\n" + message
	}
	if hasDayBreach {
		message = "[FAIL]: Once-per-day check.\n" + message
	} else {
		message = "[  OK]: Once-per-day check.\n" + message
	}
	if hasBatchCollision {
		message = "[FAIL]: Batch collision check.\n" + message
	} else {
		message = "[  OK]: Batch collision check.\n" + message
	}
	if hasInstructorCollision {
		message = "[FAIL]: Instructor collision check.\n" + message
	} else {
		message = "[  OK]: Instructor collision check.\n" + message
	}
	if hasRoomCollision {
		message = "[FAIL]: Room collision check.\n" + message
	} else {
		message = "[  OK]: Room collision check.\n" + message
	}

	return valid, message
}
