package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/handlers"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/SscSPs/budget_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockBudgetService *MockBudgetService
	token             string
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	cfg := &config.Config{
		JWTSecret:          testJWTSecret,
		ReportLocation:     time.UTC,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	suite.mockBudgetService = new(MockBudgetService)
	services := &portssvc.ServiceContainer{
		Transaction: new(MockTransactionService),
		Budget:      suite.mockBudgetService,
		Reporting:   new(MockReportingService),
	}
	rateLimiter, err := middleware.NewMemoryRateLimiter("1-M")
	suite.Require().NoError(err)

	handlers.RegisterRoutes(suite.router, cfg, services, rateLimiter)
	suite.token = generateTestToken(&suite.Suite, "owner_1")
}

func (suite *RouterTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RouterTestSuite) TestAPIRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudget")
}

func (suite *RouterTestSuite) TestRateLimitPerOwner() {
	suite.mockBudgetService.On("GetBudget", mock.Anything, "owner_1").
		Return(&domain.Budget{OwnerID: "owner_1", Ceiling: decimal.NewFromInt(20000), IsDefault: true}, nil).Once()

	newReq := func() *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget", nil)
		req.Header.Set("Authorization", "Bearer "+suite.token)
		return req
	}

	first := suite.serve(newReq())
	suite.Equal(http.StatusOK, first.Code)
	suite.Equal("1", first.Header().Get("X-RateLimit-Limit"))
	suite.NotEmpty(first.Header().Get("X-RateLimit-Reset"))

	second := suite.serve(newReq())
	suite.Equal(http.StatusTooManyRequests, second.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) TestCORSPreflight() {
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/budget", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := suite.serve(req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *RouterTestSuite) TestSwaggerServedOutsideProduction() {
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "/reports/summary")
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
