package services

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
)

// Insights is a derived monthly summary of a user's financial profile and
// goal progress. It is computed on demand, never stored.
type Insights struct {
	MonthlyIncome   float64            `json:"monthly_income"`
	TotalExpenses   float64            `json:"total_expenses"`
	ExpenseShares   map[string]float64 `json:"expense_shares"`
	MonthlySurplus  float64            `json:"monthly_surplus"`
	SavingsRate     float64            `json:"savings_rate"`
	GoalCount       int                `json:"goal_count"`
	GoalsOnTarget   int                `json:"goals_on_target"`
	TotalGoalTarget float64            `json:"total_goal_target"`
	TotalGoalSaved  float64            `json:"total_goal_saved"`
}

type InsightsService struct {
	store repositories.Storage
}

func NewInsightsService(store repositories.Storage) *InsightsService {
	return &InsightsService{store: store}
}

// ForUser computes insights from the user's profile and goals. A missing
// profile yields nil, matching the store's absence convention.
func (s *InsightsService) ForUser(userID uint) (*Insights, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}

	profile, err := s.store.GetFinancialProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	goals, err := s.store.GetFinancialGoals(userID)
	if err != nil {
		return nil, err
	}

	return compute(profile, goals), nil
}

func compute(profile *entities.FinancialProfile, goals []entities.FinancialGoal) *Insights {
	ins := &Insights{
		MonthlyIncome: profile.MonthlyIncome,
		ExpenseShares: make(map[string]float64),
		GoalCount:     len(goals),
	}

	expenses := map[string]float64{
		"housing":   profile.HousingExpense,
		"transport": profile.TransportExpense,
		"food":      profile.FoodExpense,
		"other":     profile.OtherExpenses,
	}
	for _, amount := range expenses {
		ins.TotalExpenses += amount
	}
	if ins.TotalExpenses > 0 {
		for category, amount := range expenses {
			ins.ExpenseShares[category] = amount / ins.TotalExpenses * 100
		}
	}

	ins.MonthlySurplus = profile.MonthlyIncome - ins.TotalExpenses
	if profile.MonthlyIncome > 0 {
		ins.SavingsRate = ins.MonthlySurplus / profile.MonthlyIncome * 100
	}

	for _, goal := range goals {
		ins.TotalGoalTarget += goal.TargetAmount
		ins.TotalGoalSaved += goal.CurrentAmount
		if goal.TargetAmount > 0 && goal.CurrentAmount >= goal.TargetAmount {
			ins.GoalsOnTarget++
		}
	}

	return ins
}
