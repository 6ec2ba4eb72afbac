package entities

import (
	"time"

	"gorm.io/gorm"
)

// FinancialProfile holds the monthly financial picture for one user.
// One profile per user by convention; the store does not hard-enforce it.
type FinancialProfile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"column:user_id;index" json:"user_id"`
	MonthlyIncome    float64   `gorm:"column:monthly_income" json:"monthly_income"`
	HousingExpense   float64   `gorm:"column:housing_expense" json:"housing_expense"`
	TransportExpense float64   `gorm:"column:transport_expense" json:"transport_expense"`
	FoodExpense      float64   `gorm:"column:food_expense" json:"food_expense"`
	OtherExpenses    float64   `gorm:"column:other_expenses" json:"other_expenses"`
	SavingsGoal      float64   `gorm:"column:savings_goal" json:"savings_goal"`
	RetirementGoal   float64   `gorm:"column:retirement_goal" json:"retirement_goal"`
	RiskTolerance    string    `gorm:"column:risk_tolerance" json:"risk_tolerance"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (p *FinancialProfile) BeforeCreate(tx *gorm.DB) (err error) {
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// FinancialProfileUpdate carries a partial profile mutation. Nil fields are
// left unchanged; non-nil fields overwrite, including explicit zeroes.
type FinancialProfileUpdate struct {
	MonthlyIncome    *float64 `json:"monthly_income"`
	HousingExpense   *float64 `json:"housing_expense"`
	TransportExpense *float64 `json:"transport_expense"`
	FoodExpense      *float64 `json:"food_expense"`
	OtherExpenses    *float64 `json:"other_expenses"`
	SavingsGoal      *float64 `json:"savings_goal"`
	RetirementGoal   *float64 `json:"retirement_goal"`
	RiskTolerance    *string  `json:"risk_tolerance"`
}

// Apply merges the non-nil fields into the profile and refreshes UpdatedAt.
func (u FinancialProfileUpdate) Apply(p *FinancialProfile) {
	if u.MonthlyIncome != nil {
		p.MonthlyIncome = *u.MonthlyIncome
	}
	if u.HousingExpense != nil {
		p.HousingExpense = *u.HousingExpense
	}
	if u.TransportExpense != nil {
		p.TransportExpense = *u.TransportExpense
	}
	if u.FoodExpense != nil {
		p.FoodExpense = *u.FoodExpense
	}
	if u.OtherExpenses != nil {
		p.OtherExpenses = *u.OtherExpenses
	}
	if u.SavingsGoal != nil {
		p.SavingsGoal = *u.SavingsGoal
	}
	if u.RetirementGoal != nil {
		p.RetirementGoal = *u.RetirementGoal
	}
	if u.RiskTolerance != nil {
		p.RiskTolerance = *u.RiskTolerance
	}
	p.UpdatedAt = time.Now().UTC()
}
