package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
)

// MaxMessageLength bounds the user's chat message.
const MaxMessageLength = 2000

// fallbackAdvice is returned when generation fails after classification. The
// chat endpoint degrades, it never crashes.
const fallbackAdvice = "I'm having trouble right now. Please try again soon!"

// ChatInput represents the input for a coaching chat message.
type ChatInput struct {
	UserID  uuid.UUID
	Message string
}

// ChatOutput represents the coach's reply.
type ChatOutput struct {
	Reply     string           `json:"reply"`
	Fallback  bool             `json:"fallback"`
	LastError *ProcessingError `json:"last_error,omitempty"`
}

// ChatUseCase handles the AI financial coach conversation.
type ChatUseCase struct {
	userRepo      adapter.UserRepository
	adviceService adapter.AdviceService
	tracker       ProcessingTracker
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(
	userRepo adapter.UserRepository,
	adviceService adapter.AdviceService,
	tracker ProcessingTracker,
) *ChatUseCase {
	return &ChatUseCase{
		userRepo:      userRepo,
		adviceService: adviceService,
		tracker:       tracker,
	}
}

// Execute sends the user's message to the coach with their financial profile
// as context. Generation failures are classified, recorded on the tracker and
// answered with a fallback reply.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.ErrEmptyAdvisorMessage
	}
	if len(message) > MaxMessageLength {
		return nil, domainerror.ErrAdvisorMessageTooLong
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !uc.adviceService.IsAvailable() {
		return &ChatOutput{Reply: fallbackAdvice, Fallback: true}, nil
	}

	uc.tracker.SetProcessing(input.UserID)
	defer uc.tracker.ClearProcessing(input.UserID)

	reply, err := uc.adviceService.Advise(ctx, buildCoachPrompt(message, user.Profile))
	if err != nil {
		processingErr := classifyError(err)
		uc.tracker.SetError(input.UserID, processingErr)
		slog.Warn("Advice generation failed",
			"userID", input.UserID,
			"code", processingErr.Code,
			"retryable", processingErr.Retryable,
			"error", err,
		)
		return &ChatOutput{
			Reply:     fallbackAdvice,
			Fallback:  true,
			LastError: processingErr,
		}, nil
	}

	uc.tracker.ClearError(input.UserID)

	return &ChatOutput{Reply: reply}, nil
}

// buildCoachPrompt embeds the user's financial profile into the coaching
// system prompt.
func buildCoachPrompt(message string, profile entity.Profile) string {
	contextInfo := "User profile not available."
	if profile.MonthlyIncome.IsPositive() {
		surplus := profile.MonthlyIncome.Sub(profile.MonthlyExpenses)
		contextInfo = fmt.Sprintf(`User's Financial Profile:
- Monthly Income: %s
- Monthly Expenses: %s
- Travel Cost: %s
- Food/Snacks: %s
- Random Expenses: %s
- SIP Goal: %s
- Risk Level: %s
- Monthly Surplus: %s`,
			formatAmount(profile.MonthlyIncome),
			formatAmount(profile.MonthlyExpenses),
			formatAmount(profile.TravelCost),
			formatAmount(profile.FoodSnacks),
			formatAmount(profile.RandomExpenses),
			formatAmount(profile.SIPGoal),
			profile.RiskLevel,
			formatAmount(surplus),
		)
	}

	return fmt.Sprintf(`You are MintMind AI, a friendly and knowledgeable financial advisor specializing in personal finance, budgeting, SIP, EMI calculations, and wealth planning.

Your role:
- Provide clear, actionable financial advice
- Explain calculations step-by-step
- Keep the tone encouraging and supportive
- Max 300 words

%s

User query: %s`, contextInfo, message)
}

func formatAmount(amount decimal.Decimal) string {
	return amount.Round(0).StringFixed(0)
}
