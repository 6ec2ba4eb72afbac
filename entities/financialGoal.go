package entities

import (
	"time"

	"gorm.io/gorm"
)

// FinancialGoal tracks progress toward a savings target. CurrentAmount is
// expected to approach TargetAmount over time; the store does not enforce it.
type FinancialGoal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"column:user_id;index" json:"user_id"`
	Title         string     `gorm:"column:title" json:"title"`
	TargetAmount  float64    `gorm:"column:target_amount" json:"target_amount"`
	CurrentAmount float64    `gorm:"column:current_amount" json:"current_amount"`
	Deadline      *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	Category      string     `gorm:"column:category" json:"category"`
	CreatedAt     *time.Time `gorm:"column:created_at" json:"created_at"`
}

func (g *FinancialGoal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.CreatedAt == nil {
		now := time.Now().UTC()
		g.CreatedAt = &now
	}
	return nil
}

// FinancialGoalUpdate carries a partial goal mutation. Nil fields are left
// unchanged; non-nil fields overwrite, including explicit zeroes.
type FinancialGoalUpdate struct {
	Title         *string    `json:"title"`
	TargetAmount  *float64   `json:"target_amount"`
	CurrentAmount *float64   `json:"current_amount"`
	Deadline      *time.Time `json:"deadline"`
	Category      *string    `json:"category"`
}

// Apply merges the non-nil fields into the goal.
func (u FinancialGoalUpdate) Apply(g *FinancialGoal) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		g.CurrentAmount = *u.CurrentAmount
	}
	if u.Deadline != nil {
		g.Deadline = u.Deadline
	}
	if u.Category != nil {
		g.Category = *u.Category
	}
}
