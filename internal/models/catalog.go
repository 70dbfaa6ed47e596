package models

import "time"

const (
	CategoryUpper = "upper"
	CategoryLower = "lower"
)

type MuscleGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Exercise struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null" json:"name"`
	Description   *string   `json:"description"`
	MuscleGroupID uint      `gorm:"not null;index" json:"muscle_group_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExerciseDetail is an exercise joined with the name of its muscle group.
type ExerciseDetail struct {
	ID              uint      `gorm:"column:id" json:"id"`
	Name            string    `gorm:"column:name" json:"name"`
	Description     *string   `gorm:"column:description" json:"description"`
	MuscleGroupID   uint      `gorm:"column:muscle_group_id" json:"muscle_group_id"`
	MuscleGroupName string    `gorm:"column:muscle_group_name" json:"muscle_group_name"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func IsValidCategory(category string) bool {
	return category == CategoryUpper || category == CategoryLower
}
