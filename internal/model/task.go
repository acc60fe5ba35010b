package model

import "time"

// Difficulty tiers a task can declare. The tier fixes the experience
// reward at creation time.
const (
	DifficultyE = "E-Rank"
	DifficultyD = "D-Rank"
	DifficultyC = "C-Rank"
	DifficultyB = "B-Rank"
	DifficultyA = "A-Rank"
	DifficultyS = "S-Rank"
)

var expRewards = map[string]int{
	DifficultyE: 10,
	DifficultyD: 20,
	DifficultyC: 30,
	DifficultyB: 40,
	DifficultyA: 50,
	DifficultyS: 100,
}

// ExpRewardFor returns the fixed reward for a difficulty tier,
// or 0 for anything outside the tier set.
func ExpRewardFor(difficulty string) int {
	return expRewards[difficulty]
}

// Task represents a to-do item owned by exactly one user. ExpReward is
// computed once from Difficulty at creation and never recomputed, even
// when the difficulty is edited later.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:50;default:'Pending'"`
	Difficulty  string    `json:"difficulty" gorm:"size:50;default:'E-Rank'"`
	Priority    string    `json:"priority" gorm:"size:50;default:'Medium'"`
	DueDate     *Date     `json:"dueDate" gorm:"type:date"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	ExpReward   int       `json:"expReward" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TaskUpdate carries the mutable task fields; nil means leave untouched.
// ExpReward is deliberately absent: the reward freezes at creation.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Difficulty  *string
	Priority    *string
	DueDate     *Date
}

// Apply overwrites the fields present in the update.
func (u *TaskUpdate) Apply(task *Task) {
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Status != nil {
		task.Status = *u.Status
	}
	if u.Difficulty != nil {
		task.Difficulty = *u.Difficulty
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.DueDate != nil {
		task.DueDate = u.DueDate
	}
}
