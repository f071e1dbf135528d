package csvio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/atess/atess/pkg/model"
)

// ExportTimetable writes timetable entries to the CSV file at path. An empty
// entry set is a no-op with a warning.
func ExportTimetable(entries []model.TimetableEntry, path string, logger *zap.Logger) error {
	if len(entries) == 0 {
		logger.Warn("no timetable entries to write", zap.String("file", path))
		return nil
	}
	if err := marshalToFile(&entries, path); err != nil {
		return err
	}
	logger.Info("timetable exported", zap.String("file", path), zap.Int("rows", len(entries)))
	return nil
}

// ExportExams writes exam records to the CSV file at path, with room and
// invigilator lists comma-joined. An empty exam set is a no-op with a warning.
func ExportExams(exams []model.Exam, path string, logger *zap.Logger) error {
	if len(exams) == 0 {
		logger.Warn("no exams to write", zap.String("file", path))
		return nil
	}
	rows := make([]*model.ExamCSVRow, 0, len(exams))
	for _, e := range exams {
		rows = append(rows, &model.ExamCSVRow{
			ExamCode:     e.ExamCode,
			CourseCode:   e.CourseCode,
			CourseName:   e.CourseName,
			Date:         e.Date,
			TimeSlot:     e.TimeSlot,
			Rooms:        strings.Join(e.RoomIDs, ","),
			StudentCount: e.StudentCount,
			Invigilators: strings.Join(e.InvigilatorIDs, ","),
		})
	}
	if err := marshalToFile(&rows, path); err != nil {
		return err
	}
	logger.Info("exam schedule exported", zap.String("file", path), zap.Int("rows", len(rows)))
	return nil
}

// ExportSeating writes one row per filled seat, plans in allocation order and
// seats in ascending order. Plans with no filled seats produce no rows; a
// fully empty row set is a no-op with a warning.
func ExportSeating(plans []model.SeatingPlan, path string, logger *zap.Logger) error {
	var rows []*model.SeatingCSVRow
	for _, plan := range plans {
		seats := make([]int, 0, len(plan.Seats))
		for seat := range plan.Seats {
			seats = append(seats, seat)
		}
		sort.Ints(seats)
		for _, seat := range seats {
			rows = append(rows, &model.SeatingCSVRow{
				ExamCode:   plan.ExamCode,
				RoomID:     plan.RoomID,
				SeatNumber: seat,
				StudentID:  plan.Seats[seat],
			})
		}
	}
	if len(rows) == 0 {
		logger.Warn("no seating rows to write", zap.String("file", path))
		return nil
	}
	if err := marshalToFile(&rows, path); err != nil {
		return err
	}
	logger.Info("seating plan exported", zap.String("file", path), zap.Int("rows", len(rows)))
	return nil
}

func marshalToFile(rows any, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
