package models

import "time"

const (
	RoutineUpper    = "upper"
	RoutineLower    = "lower"
	RoutineFullBody = "fullbody"
)

type WeeklyRoutine struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_weekly_routines_user_day" json:"user_id"`
	DayOfWeek   int       `gorm:"not null;uniqueIndex:uidx_weekly_routines_user_day" json:"day_of_week"`
	RoutineType string    `gorm:"not null" json:"routine_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WeeklyRoutineMuscleGroup struct {
	WeeklyRoutineID uint      `gorm:"primaryKey;autoIncrement:false" json:"weekly_routine_id"`
	MuscleGroupID   uint      `gorm:"primaryKey;autoIncrement:false" json:"muscle_group_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type WeeklyRoutineExercise struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	WeeklyRoutineID uint      `gorm:"not null;uniqueIndex:uidx_weekly_routine_exercises_pair" json:"weekly_routine_id"`
	ExerciseID      uint      `gorm:"not null;uniqueIndex:uidx_weekly_routine_exercises_pair" json:"exercise_id"`
	Sets            int       `gorm:"not null" json:"sets"`
	Reps            int       `gorm:"not null" json:"reps"`
	CreatedAt       time.Time `json:"created_at"`
}

// WeeklyRoutineDetail is a routine row joined with its owner's username.
type WeeklyRoutineDetail struct {
	ID          uint      `gorm:"column:id" json:"id"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	Username    string    `gorm:"column:username" json:"username"`
	DayOfWeek   int       `gorm:"column:day_of_week" json:"day_of_week"`
	RoutineType string    `gorm:"column:routine_type" json:"routine_type"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

type RoutineMuscleGroupDetail struct {
	WeeklyRoutineID uint   `gorm:"column:weekly_routine_id" json:"weekly_routine_id"`
	MuscleGroupID   uint   `gorm:"column:muscle_group_id" json:"muscle_group_id"`
	MuscleGroupName string `gorm:"column:muscle_group_name" json:"muscle_group_name"`
	Category        string `gorm:"column:category" json:"category"`
	DayOfWeek       int    `gorm:"column:day_of_week" json:"day_of_week"`
	UserID          uint   `gorm:"column:user_id" json:"user_id"`
}

type RoutineExerciseDetail struct {
	ID              uint      `gorm:"column:id" json:"id"`
	WeeklyRoutineID uint      `gorm:"column:weekly_routine_id" json:"weekly_routine_id"`
	ExerciseID      uint      `gorm:"column:exercise_id" json:"exercise_id"`
	Sets            int       `gorm:"column:sets" json:"sets"`
	Reps            int       `gorm:"column:reps" json:"reps"`
	ExerciseName    string    `gorm:"column:exercise_name" json:"exercise_name"`
	MuscleGroupName string    `gorm:"column:muscle_group_name" json:"muscle_group_name"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func IsValidRoutineType(routineType string) bool {
	switch routineType {
	case RoutineUpper, RoutineLower, RoutineFullBody:
		return true
	default:
		return false
	}
}

func IsValidDayOfWeek(day int) bool {
	return day >= 1 && day <= 7
}
