package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/atess/atess/internal/config"
	"github.com/atess/atess/internal/csvio"
	"github.com/atess/atess/internal/scheduler"
	"github.com/atess/atess/pkg/model"
)

func main() {
	configPath := pflag.String("config", "", "optional YAML config file")
	examStart := pflag.String("exam-start", "", "exam period start date (YYYY-MM-DD), overrides config")
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load configuration", zap.Error(err))
	}
	if *examStart != "" {
		cfg.ExamStartDate = *examStart
	}
	startDate, err := time.Parse("2006-01-02", cfg.ExamStartDate)
	if err != nil {
		logger.Fatal("parse exam start date", zap.Error(err))
	}

	for _, out := range []string{cfg.TimetableFile, cfg.ExamFile, cfg.SeatingFile} {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			logger.Fatal("create output directory", zap.Error(err))
		}
	}

	// Any missing or malformed input aborts the run before output is written.
	professors, err := csvio.LoadProfessors(cfg.ProfessorsFile, cfg.DefaultMaxHours, logger)
	if err != nil {
		logger.Fatal("load professors", zap.Error(err))
	}
	rooms, err := csvio.LoadRooms(cfg.RoomsFile, logger)
	if err != nil {
		logger.Fatal("load rooms", zap.Error(err))
	}
	courses, err := csvio.LoadCourses(cfg.CoursesFile, logger)
	if err != nil {
		logger.Fatal("load courses", zap.Error(err))
	}
	enrollments, err := csvio.LoadEnrollments(cfg.StudentsFile, logger)
	if err != nil {
		logger.Fatal("load enrollments", zap.Error(err))
	}

	profIndex := make(map[string]model.Professor, len(professors))
	for _, p := range professors {
		profIndex[p.ID] = p
	}

	sched := scheduler.New(cfg.Calendar, profIndex, rooms, logger)
	entries := sched.FillCourses(courses)
	if err := csvio.ExportTimetable(entries, cfg.TimetableFile, logger); err != nil {
		logger.Fatal("export timetable", zap.Error(err))
	}

	valid, report := scheduler.Verify(entries, courses, cfg.Calendar.LunchSlot)
	logger.Info("timetable audit", zap.Bool("valid", valid), zap.String("report", report))

	allocator := scheduler.NewExamAllocator(cfg.Calendar, rooms, enrollments, logger)
	exams, seating := allocator.Allocate(courses, startDate)
	if err := csvio.ExportExams(exams, cfg.ExamFile, logger); err != nil {
		logger.Fatal("export exam schedule", zap.Error(err))
	}
	if err := csvio.ExportSeating(seating, cfg.SeatingFile, logger); err != nil {
		logger.Fatal("export seating plan", zap.Error(err))
	}

	logger.Info("run complete",
		zap.Int("timetable_entries", len(entries)),
		zap.Int("exams", len(exams)))
}
