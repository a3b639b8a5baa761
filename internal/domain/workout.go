package domain

import "time"

// DateLayout is the calendar-date format used for Workout.Date.
const DateLayout = "2006-01-02"

// Workout represents a single exercise entry for the day.
type Workout struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Calories  int    `json:"calories"`  // Always >= 0
	Completed bool   `json:"completed"` // Flipped by toggle, false on creation
	Date      string `json:"date"`      // Calendar date (DateLayout), UTC
}

// FormatDate renders t as a calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SampleWorkout is a seed entry without identity; the store assigns the id.
type SampleWorkout struct {
	Name      string
	Calories  int
	Completed bool
}

// SampleWorkouts is the default seed set shown to a fresh session.
func SampleWorkouts() []SampleWorkout {
	return []SampleWorkout{
		{Name: "Push-ups", Calories: 100},
		{Name: "Running", Calories: 300, Completed: true},
		{Name: "Squats", Calories: 150},
		{Name: "Cycling", Calories: 400},
		{Name: "Plank", Calories: 80, Completed: true},
	}
}
