package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Calendar fixes the academic week the engine schedules into. Day and slot
// order is placement precedence order.
type Calendar struct {
	WorkingDays []string `mapstructure:"workingDays"`
	TimeSlots   []string `mapstructure:"timeSlots"`
	LunchSlot   string   `mapstructure:"lunchSlot"`
	ExamSlots   []string `mapstructure:"examSlots"`
}

// Config is the full run configuration.
type Config struct {
	ProfessorsFile  string   `mapstructure:"professorsFile"`
	RoomsFile       string   `mapstructure:"roomsFile"`
	CoursesFile     string   `mapstructure:"coursesFile"`
	StudentsFile    string   `mapstructure:"studentsFile"`
	TimetableFile   string   `mapstructure:"timetableFile"`
	ExamFile        string   `mapstructure:"examFile"`
	SeatingFile     string   `mapstructure:"seatingFile"`
	ExamStartDate   string   `mapstructure:"examStartDate"`
	DefaultMaxHours int      `mapstructure:"defaultMaxHours"`
	Calendar        Calendar `mapstructure:"calendar"`
}

// Load builds the run configuration from defaults, an optional config file,
// and ATESS_ environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("professorsFile", "data/input/professors.csv")
	v.SetDefault("roomsFile", "data/input/rooms.csv")
	v.SetDefault("coursesFile", "data/input/courses.csv")
	v.SetDefault("studentsFile", "data/input/students.csv")
	v.SetDefault("timetableFile", "data/output/timetable.csv")
	v.SetDefault("examFile", "data/output/exam_schedule.csv")
	v.SetDefault("seatingFile", "data/output/seating_plan.csv")
	v.SetDefault("examStartDate", "2025-12-01")
	v.SetDefault("defaultMaxHours", 18)
	v.SetDefault("calendar.workingDays", []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	})
	v.SetDefault("calendar.timeSlots", []string{
		"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
		"14:00-15:00", "15:00-16:00", "16:00-17:00",
	})
	v.SetDefault("calendar.lunchSlot", "12:00-13:00")
	v.SetDefault("calendar.examSlots", []string{"09:00-12:00", "14:00-17:00"})

	v.SetEnvPrefix("ATESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Calendar.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Calendar) validate() error {
	if len(c.WorkingDays) == 0 {
		return fmt.Errorf("calendar: no working days")
	}
	if len(c.TimeSlots) == 0 {
		return fmt.Errorf("calendar: no time slots")
	}
	if len(c.ExamSlots) == 0 {
		return fmt.Errorf("calendar: no exam slots")
	}
	return nil
}
