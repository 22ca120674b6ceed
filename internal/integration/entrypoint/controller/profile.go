package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/usecase/profile"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/entrypoint/dto"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles financial profile endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	updateUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Update handles PUT /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := profile.UpdateProfileInput{
		UserID:          userID,
		MonthlyIncome:   decimal.NewFromFloat(req.MonthlyIncome),
		MonthlyExpenses: decimal.NewFromFloat(req.MonthlyExpenses),
		TravelCost:      decimal.NewFromFloat(req.TravelCost),
		FoodSnacks:      decimal.NewFromFloat(req.FoodSnacks),
		RandomExpenses:  decimal.NewFromFloat(req.RandomExpenses),
		SIPGoal:         decimal.NewFromFloat(req.SIPGoal),
		RiskLevel:       entity.RiskLevel(req.RiskLevel),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: plannerErr.Message,
			Code:  string(plannerErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
