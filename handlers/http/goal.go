package httpHandler

import (
	"net/http"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/usecases"
	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	useCase *usecases.FinanceUseCase
}

func NewGoalHandler(useCase *usecases.FinanceUseCase) *GoalHandler {
	return &GoalHandler{useCase: useCase}
}

// GetGoals handles GET /api/v1/users/:id/goals
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	goals, err := h.useCase.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  goals,
		"count": len(goals),
	})
}

// CreateGoal handles POST /api/v1/users/:id/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var goal entities.FinancialGoal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	goal.UserID = userID

	created, err := h.useCase.CreateGoal(&goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Goal created successfully",
		"data":    created,
	})
}

// GetGoal handles GET /api/v1/goals/:id
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := h.useCase.GetGoal(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": goal})
}

// UpdateGoal handles PUT /api/v1/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var update entities.FinancialGoalUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.useCase.UpdateGoal(id, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": goal})
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.useCase.DeleteGoal(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
