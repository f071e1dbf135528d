package csvio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/atess/atess/pkg/model"
)

// LoadProfessors reads and parses the given csv file for professor data.
// Missing department defaults to empty, missing max_hours to defaultMaxHours.
func LoadProfessors(path string, defaultMaxHours int, logger *zap.Logger) ([]model.Professor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []*model.ProfessorCSV{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	professors := make([]model.Professor, 0, len(records))
	for _, r := range records {
		maxHours := defaultMaxHours
		if r.MaxHoursSTR != "" {
			maxHours, err = strconv.Atoi(r.MaxHoursSTR)
			if err != nil {
				return nil, fmt.Errorf("%s: professor %s: max_hours %q is not an integer", path, r.ID, r.MaxHoursSTR)
			}
		}
		professors = append(professors, model.Professor{
			ID:         r.ID,
			Name:       r.Name,
			Department: r.Department,
			MaxHours:   maxHours,
		})
	}
	logger.Info("professors loaded", zap.String("file", path), zap.Int("count", len(professors)))
	return professors, nil
}

// LoadRooms reads and parses the given csv file for room data. The accessible
// column is optional and true only for a case-insensitive "yes".
func LoadRooms(path string, logger *zap.Logger) ([]model.Room, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []*model.RoomCSV{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rooms := make([]model.Room, 0, len(records))
	for _, r := range records {
		capacity, err := strconv.Atoi(r.CapacitySTR)
		if err != nil {
			return nil, fmt.Errorf("%s: room %s: capacity %q is not an integer", path, r.ID, r.CapacitySTR)
		}
		if capacity < 1 {
			return nil, fmt.Errorf("%s: room %s: capacity must be positive, got %d", path, r.ID, capacity)
		}
		rooms = append(rooms, model.Room{
			ID:         r.ID,
			Capacity:   capacity,
			Type:       r.Type,
			Accessible: strings.EqualFold(r.AccessibleSTR, "yes"),
		})
	}
	logger.Info("rooms loaded", zap.String("file", path), zap.Int("count", len(rooms)))
	return rooms, nil
}

// LoadCourses reads and parses the given csv file for course data. L, T, P and
// credits must all be present and integral; anything else is a hard error.
func LoadCourses(path string, logger *zap.Logger) ([]model.Course, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []*model.CourseCSV{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	courses := make([]model.Course, 0, len(records))
	for _, r := range records {
		course := model.Course{
			CourseCode:   r.CourseCode,
			CourseName:   r.CourseName,
			InstructorID: r.InstructorID,
			BatchID:      r.BatchID,
		}
		for _, field := range []struct {
			name  string
			raw   string
			value *int
		}{
			{"L", r.LectureSTR, &course.L},
			{"T", r.TutorialSTR, &course.T},
			{"P", r.PracticalSTR, &course.P},
			{"credits", r.CreditsSTR, &course.Credits},
		} {
			n, err := strconv.Atoi(field.raw)
			if err != nil {
				return nil, fmt.Errorf("%s: course %s: %s %q is not an integer", path, r.CourseCode, field.name, field.raw)
			}
			*field.value = n
		}
		courses = append(courses, course)
	}
	logger.Info("courses loaded", zap.String("file", path), zap.Int("count", len(courses)))
	return courses, nil
}

// LoadEnrollments reads the given csv file and groups student ids by course
// code. Row order within a course is kept; it defines seating order. No
// deduplication is performed.
func LoadEnrollments(path string, logger *zap.Logger) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []*model.EnrollmentCSV{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	enrollments := make(map[string][]string)
	for _, r := range records {
		enrollments[r.CourseCode] = append(enrollments[r.CourseCode], r.StudentID)
	}
	logger.Info("enrollments loaded", zap.String("file", path), zap.Int("courses", len(enrollments)))
	return enrollments, nil
}
