package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mintmind/backend/internal/application/usecase/advisor"
	"github.com/mintmind/backend/internal/application/usecase/auth"
	"github.com/mintmind/backend/internal/application/usecase/dashboard"
	"github.com/mintmind/backend/internal/application/usecase/insight"
	"github.com/mintmind/backend/internal/application/usecase/pattern"
	"github.com/mintmind/backend/internal/application/usecase/planner"
	"github.com/mintmind/backend/internal/application/usecase/profile"
	"github.com/mintmind/backend/internal/application/usecase/transaction"
	"github.com/mintmind/backend/internal/infra/server/router"
	"github.com/mintmind/backend/internal/integration/adapters"
	"github.com/mintmind/backend/internal/integration/cache"
	"github.com/mintmind/backend/internal/integration/entrypoint/controller"
	"github.com/mintmind/backend/internal/integration/entrypoint/middleware"
	"github.com/mintmind/backend/internal/integration/persistence"
	"github.com/mintmind/backend/internal/integration/persistence/model"
	"github.com/mintmind/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("mintmind", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"transactions":   &model.TransactionModel{},
			"alert_emails":   &model.AlertEmailModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user has a monthly income of "([^"]*)"$`, test.theUserHasAMonthlyIncomeOf)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Transaction setup steps
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" in "([^"]*)" dated today$`, test.aTransactionDatedToday)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" in "([^"]*)" dated (\d+) months ago$`, test.aTransactionDatedMonthsAgo)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			alertQueueRepo := persistence.NewAlertEmailRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			adviceService := adapters.NewGeminiService("") // unavailable: chat answers with the fallback
			clock := adapters.NewSystemClock()
			summaryCache := cache.NewSummaryCache(mock.NewRedis())
			breachNotifier := insight.NewBreachNotifier(alertQueueRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, summaryCache)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

			// Create dashboard use cases
			summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, userRepo, summaryCache, clock)
			dailySeriesUseCase := dashboard.NewGetDailySeriesUseCase(transactionRepo, clock)
			breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo, clock)

			// Create insight and pattern use cases
			transactionInsightUseCase := insight.NewGetTransactionInsightUseCase(transactionRepo, userRepo, breachNotifier, clock)
			insightSummaryUseCase := insight.NewGetInsightSummaryUseCase(transactionRepo, userRepo, clock)
			analyzePatternUseCase := pattern.NewAnalyzeCategoryUseCase(transactionRepo, clock)

			// Create planner use cases
			budgetUseCase := planner.NewCalculateBudgetUseCase(userRepo)
			sipUseCase := planner.NewCalculateSIPUseCase(userRepo)
			emiUseCase := planner.NewCalculateEMIUseCase(userRepo)
			goalPlanUseCase := planner.NewCreateGoalPlanUseCase(userRepo)

			// Create advisor use case
			chatUseCase := advisor.NewChatUseCase(userRepo, adviceService, advisor.NewInMemoryProcessingTracker())

			// Create profile use cases
			getProfileUseCase := profile.NewGetProfileUseCase(userRepo)
			updateProfileUseCase := profile.NewUpdateProfileUseCase(userRepo, summaryCache)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return mock.NewRedis().Ping(context.Background()).Err() == nil },
			)

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			dashboardController := controller.NewDashboardController(
				summaryUseCase,
				dailySeriesUseCase,
				breakdownUseCase,
			)

			insightController := controller.NewInsightController(
				transactionInsightUseCase,
				insightSummaryUseCase,
				analyzePatternUseCase,
			)

			plannerController := controller.NewPlannerController(
				budgetUseCase,
				sipUseCase,
				emiUseCase,
				goalPlanUseCase,
			)

			advisorController := controller.NewAdvisorController(chatUseCase)

			profileController := controller.NewProfileController(
				getProfileUseCase,
				updateProfileUseCase,
			)

			// Create middleware with generous limits so scenarios never trip them
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			chatRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				transactionController,
				dashboardController,
				insightController,
				plannerController,
				advisorController,
				profileController,
				loginRateLimiter,
				chatRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		RiskLevel:    "medium",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func (t *testContext) theUserHasAMonthlyIncomeOf(income string) error {
	amount, err := decimal.NewFromString(income)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", income, err)
	}

	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Updates(map[string]any{
			"monthly_income":  amount,
			"onboarding_done": true,
		}).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, now.Add(15*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, now.Add(7*24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) signToken(tokenType string, now, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(expiresAt),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "mintmind",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aTransactionDatedToday(transactionType, amount, category string) error {
	return t.createTransaction(transactionType, amount, category, time.Now().UTC())
}

func (t *testContext) aTransactionDatedMonthsAgo(transactionType, amount, category string, monthsAgo int) error {
	return t.createTransaction(transactionType, amount, category, time.Now().UTC().AddDate(0, -monthsAgo, 0))
}

func (t *testContext) createTransaction(transactionType, amount, category string, date time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		Type:      transactionType,
		Amount:    value,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(transactionModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture transaction ID from create responses
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
