package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/application/usecase/insight"
	"github.com/mintmind/backend/internal/application/usecase/pattern"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/entrypoint/dto"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles insight and pattern analysis endpoints.
type InsightController struct {
	transactionInsightUseCase *insight.GetTransactionInsightUseCase
	insightSummaryUseCase     *insight.GetInsightSummaryUseCase
	patternUseCase            *pattern.AnalyzeCategoryUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	transactionInsightUseCase *insight.GetTransactionInsightUseCase,
	insightSummaryUseCase *insight.GetInsightSummaryUseCase,
	patternUseCase *pattern.AnalyzeCategoryUseCase,
) *InsightController {
	return &InsightController{
		transactionInsightUseCase: transactionInsightUseCase,
		insightSummaryUseCase:     insightSummaryUseCase,
		patternUseCase:            patternUseCase,
	}
}

// GetTransactionInsight handles GET /insights/transactions/:id requests.
func (c *InsightController) GetTransactionInsight(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	input := insight.GetTransactionInsightInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	output, err := c.transactionInsightUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionInsightResponse(output))
}

// GetInsightSummary handles GET /insights/summary requests.
func (c *InsightController) GetInsightSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.GetInsightSummaryInput{
		UserID: userID,
	}

	output, err := c.insightSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightSummaryResponse(output))
}

// AnalyzePattern handles GET /patterns/:category requests.
func (c *InsightController) AnalyzePattern(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := pattern.AnalyzeCategoryInput{
		UserID:   userID,
		Category: entity.Category(ctx.Param("category")),
	}

	output, err := c.patternUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPatternAnalysisResponse(output))
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := c.getStatusCodeForInsightError(insightErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMonthlyLimitNotConfigured,
		domainerror.ErrCodeInvalidPatternCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
