package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Contact      string `json:"contact"`
	Course       string `json:"course"`
	Level        int    `json:"level"`
	RollID       string `json:"roll_id"`
}

type Counselor struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Specialization string          `json:"specialization"`
	Location       string          `json:"location"`
	Availability   json.RawMessage `json:"availability"`
}

// Appointments have a fixed one hour duration; only the start is stored.
// All times are interpreted as UTC.
type Appointment struct {
	ID              string    `json:"id"`
	AppointmentTime time.Time `json:"appointment_time"`
	CounselorID     string    `json:"counselor_id"`
	StudentID       string    `json:"student_id"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
}

type DiaryEntry struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	EntryDate time.Time `json:"entry_date"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
}

type Workout struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Duration    int       `json:"duration"` // minutes
	CreatedAt   time.Time `json:"created_at"`
}

// StudentWorkout is a workout instance assigned to a student.
type StudentWorkout struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	WorkoutID   string     `json:"workout_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	Feedback    string     `json:"feedback"`
}

type StudentExercise struct {
	ID          string `json:"id"`
	WorkoutID   string `json:"workout_id"` // references a student workout
	StudentID   string `json:"student_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Repetitions int    `json:"repetitions"`
	Sets        int    `json:"sets"`
	Duration    int    `json:"duration"`    // seconds per set
	RestPeriod  int    `json:"rest_period"` // seconds between sets
}

// Patch types carry partial updates. A nil field is left untouched;
// an explicit JSON null decodes to nil and is likewise skipped.

type CounselorPatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
	Location       *string `json:"location"`
}

type AppointmentPatch struct {
	AppointmentTime *time.Time `json:"appointmentTime"`
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
	Type            *string    `json:"type"`
}

type DiaryEntryPatch struct {
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
	Title   *string `json:"title"`
	Color   *string `json:"color"`
}

type WorkoutPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	Duration    *int    `json:"duration"`
}

type StudentWorkoutPatch struct {
	Status      *string    `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	Feedback    *string    `json:"feedback"`
}

type StudentExercisePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Repetitions *int    `json:"repetitions"`
	Sets        *int    `json:"sets"`
	Duration    *int    `json:"duration"`
	RestPeriod  *int    `json:"rest_period"`
}
