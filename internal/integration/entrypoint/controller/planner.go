package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/usecase/planner"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/entrypoint/dto"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// PlannerController handles budgeting and investment planning endpoints.
type PlannerController struct {
	budgetUseCase   *planner.CalculateBudgetUseCase
	sipUseCase      *planner.CalculateSIPUseCase
	emiUseCase      *planner.CalculateEMIUseCase
	goalPlanUseCase *planner.CreateGoalPlanUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	budgetUseCase *planner.CalculateBudgetUseCase,
	sipUseCase *planner.CalculateSIPUseCase,
	emiUseCase *planner.CalculateEMIUseCase,
	goalPlanUseCase *planner.CreateGoalPlanUseCase,
) *PlannerController {
	return &PlannerController{
		budgetUseCase:   budgetUseCase,
		sipUseCase:      sipUseCase,
		emiUseCase:      emiUseCase,
		goalPlanUseCase: goalPlanUseCase,
	}
}

// CalculateBudget handles POST /planner/budget requests.
func (c *PlannerController) CalculateBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CalculateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := planner.CalculateBudgetInput{
		UserID:         userID,
		MonthlyIncome:  decimal.NewFromFloat(req.MonthlyIncome),
		NeedsPercent:   req.NeedsPercent,
		WantsPercent:   req.WantsPercent,
		SavingsPercent: req.SavingsPercent,
	}

	output, err := c.budgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}

// CalculateSIP handles POST /planner/sip requests.
func (c *PlannerController) CalculateSIP(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CalculateSIPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := planner.CalculateSIPInput{
		UserID:                userID,
		MonthlyInvestment:     decimal.NewFromFloat(req.MonthlyInvestment),
		ExpectedReturnPercent: req.ExpectedReturn,
		Years:                 req.Years,
	}

	output, err := c.sipUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSIPResponse(output))
}

// CalculateEMI handles POST /planner/emi requests.
func (c *PlannerController) CalculateEMI(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CalculateEMIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := planner.CalculateEMIInput{
		UserID:             userID,
		Principal:          decimal.NewFromFloat(req.Principal),
		AnnualInterestRate: req.InterestRate,
		TenureYears:        req.TenureYears,
	}

	output, err := c.emiUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEMIResponse(output))
}

// CreateGoalPlan handles POST /planner/goal requests.
func (c *PlannerController) CreateGoalPlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGoalPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := planner.CreateGoalPlanInput{
		UserID:         userID,
		TargetAmount:   decimal.NewFromFloat(req.TargetAmount),
		TimelineYears:  req.TimelineYears,
		CurrentSavings: decimal.NewFromFloat(req.CurrentSavings),
	}

	output, err := c.goalPlanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalPlanResponse(output))
}

// handlePlannerError handles planner errors and returns appropriate HTTP responses.
func (c *PlannerController) handlePlannerError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: plannerErr.Message,
			Code:  string(plannerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
