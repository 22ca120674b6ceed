package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mintmind/backend/internal/application/usecase/advisor"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/entrypoint/dto"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
)

// AdvisorController handles the AI coach chat endpoint.
type AdvisorController struct {
	chatUseCase *advisor.ChatUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(chatUseCase *advisor.ChatUseCase) *AdvisorController {
	return &AdvisorController{
		chatUseCase: chatUseCase,
	}
}

// Chat handles POST /advisor/chat requests.
func (c *AdvisorController) Chat(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := advisor.ChatInput{
		UserID:  userID,
		Message: req.Message,
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrEmptyAdvisorMessage) ||
			errors.Is(err, domainerror.ErrAdvisorMessageTooLong) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatResponse(output))
}
