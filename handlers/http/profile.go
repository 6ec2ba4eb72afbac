package httpHandler

import (
	"net/http"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/usecases"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	useCase *usecases.FinanceUseCase
}

func NewProfileHandler(useCase *usecases.FinanceUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// GetProfile handles GET /api/v1/users/:id/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.useCase.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// CreateProfile handles POST /api/v1/users/:id/profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var profile entities.FinancialProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	profile.UserID = userID

	created, err := h.useCase.CreateProfile(&profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile created successfully",
		"data":    created,
	})
}

// UpdateProfile handles PUT /api/v1/users/:id/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var update entities.FinancialProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.useCase.UpdateProfile(userID, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
