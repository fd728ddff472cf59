package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/focusbridge-backend/internal/pkg/validation"
	"github.com/yungbote/focusbridge-backend/internal/services"
)

type OnboardingHandler struct {
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(onboardingService services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

type OnboardingRequest struct {
	ADHDType        string   `json:"adhdType" binding:"required,oneof=inattentive hyperactive combined"`
	Struggles       []string `json:"struggles" binding:"required,min=1,max=20,dive,min=1"`
	SensoryTriggers []string `json:"sensoryTriggers" binding:"omitempty,max=20,dive,min=1"`
	Goals           []string `json:"goals" binding:"required,min=1,max=20,dive,min=1"`
}

// POST /api/onboarding
func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.Wrap(err))
		return
	}
	if req.SensoryTriggers == nil {
		req.SensoryTriggers = []string{}
	}

	result, err := h.onboardingService.Complete(c.Request.Context(), services.OnboardingInput{
		ADHDType:        req.ADHDType,
		Struggles:       req.Struggles,
		SensoryTriggers: req.SensoryTriggers,
		Goals:           req.Goals,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        result.User.ID,
			"email":     result.User.Email,
			"createdAt": result.User.CreatedAt,
		},
		"profile": gin.H{
			"id":                  result.Profile.ID,
			"adhdType":            result.Profile.ADHDType,
			"struggles":           result.Profile.Struggles,
			"sensoryTriggers":     result.Profile.SensoryTriggers,
			"goals":               result.Profile.Goals,
			"onboardingCompleted": result.Profile.OnboardingCompleted,
		},
	})
}
