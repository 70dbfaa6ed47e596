package models

import "time"

type DailyEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:uidx_daily_entries_user_date" json:"user_id"`
	Date            Date      `gorm:"not null;uniqueIndex:uidx_daily_entries_user_date" json:"date"`
	WeeklyRoutineID *uint     `gorm:"index" json:"weekly_routine_id"`
	Breakfast       *string   `json:"breakfast"`
	Lunch           *string   `json:"lunch"`
	Snack           *string   `json:"snack"`
	Dinner          *string   `json:"dinner"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DailyEntryDetail is an entry joined with the day and type of its routine,
// both empty when the entry has no routine.
type DailyEntryDetail struct {
	ID              uint      `gorm:"column:id" json:"id"`
	UserID          uint      `gorm:"column:user_id" json:"user_id"`
	Date            Date      `gorm:"column:date" json:"date"`
	WeeklyRoutineID *uint     `gorm:"column:weekly_routine_id" json:"weekly_routine_id"`
	DayOfWeek       *int      `gorm:"column:day_of_week" json:"day_of_week"`
	RoutineType     *string   `gorm:"column:routine_type" json:"routine_type"`
	Breakfast       *string   `gorm:"column:breakfast" json:"breakfast"`
	Lunch           *string   `gorm:"column:lunch" json:"lunch"`
	Snack           *string   `gorm:"column:snack" json:"snack"`
	Dinner          *string   `gorm:"column:dinner" json:"dinner"`
	Completed       bool      `gorm:"column:completed" json:"completed"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}
