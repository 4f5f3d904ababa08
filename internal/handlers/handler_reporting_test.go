package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/SscSPs/budget_tracker/internal/handlers"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	ownerID              string
	token                string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(middleware.AuthConfig{Secret: testJWTSecret}))

	suite.mockReportingService = new(MockReportingService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService, time.UTC)
	handlers.RegisterCategoryRoutes(v1, suite.mockReportingService)

	suite.ownerID = uuid.NewString()
	suite.token = generateTestToken(&suite.Suite, suite.ownerID)
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestSummary_Success() {
	anchor := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	result := &domain.AggregationResult{
		Period: domain.Monthly,
		Window: domain.Window{Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), End: anchor.Add(time.Nanosecond)},
		Totals: domain.Totals{
			Income:  decimal.NewFromInt(4000),
			Expense: decimal.NewFromInt(100),
			Balance: decimal.NewFromInt(3900),
		},
		BudgetCeiling:      decimal.NewFromInt(20000),
		UtilizationPercent: decimal.RequireFromString("0.5"),
		AdvisoryThreshold:  decimal.NewFromInt(50),
		Advisory:           domain.AdvisoryLooksGood,
		Series:             domain.Series{Buckets: []domain.SeriesBucket{}, MaxValue: decimal.NewFromInt(4000)},
		ByCategory: domain.CategoryBreakdown{
			Categories: []domain.CategoryTotal{{Category: "Salary", Net: decimal.NewFromInt(4000), TransactionCount: 1}},
			GrandTotal: decimal.NewFromInt(4000),
		},
	}

	suite.mockReportingService.On("Summary",
		mock.AnythingOfType("*context.valueCtx"),
		suite.ownerID,
		mock.MatchedBy(func(p dto.ReportParams) bool {
			return p.Period == domain.Monthly && p.Anchor.Equal(anchor) && p.BudgetCeiling == nil && p.Category == nil
		}),
	).Return(result, nil).Once()

	w := suite.get("/api/v1/reports/summary?period=monthly&anchor=2024-03-15T10:00:00Z")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportSummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("monthly", resp.Period)
	suite.True(resp.TotalIncome.Equal(decimal.NewFromInt(4000)))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(3900)))
	suite.InDelta(0.5, resp.UtilizationPercent, 1e-9)
	suite.Equal("looks_good", resp.Advisory)
	suite.Len(resp.ByCategory.Categories, 1)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestSummary_PassesOverrides() {
	suite.mockReportingService.On("Summary", mock.Anything, suite.ownerID,
		mock.MatchedBy(func(p dto.ReportParams) bool {
			return p.Period == domain.Weekly &&
				p.Category != nil && *p.Category == "Food" &&
				p.BudgetCeiling != nil && p.BudgetCeiling.Equal(decimal.NewFromInt(500)) &&
				p.SortCategories && p.SeriesDays == 14 &&
				p.Anchor.Location().String() == "Asia/Jakarta"
		}),
	).Return(&domain.AggregationResult{Period: domain.Weekly}, nil).Once()

	w := suite.get("/api/v1/reports/summary?period=weekly&category=Food&budgetCeiling=500&sort=true&days=14&tz=Asia/Jakarta")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestSummary_InvalidQuery() {
	tests := []struct {
		name string
		url  string
	}{
		{name: "unknown period", url: "/api/v1/reports/summary?period=fortnightly"},
		{name: "zero ceiling", url: "/api/v1/reports/summary?budgetCeiling=0"},
		{name: "non numeric ceiling", url: "/api/v1/reports/summary?budgetCeiling=lots"},
		{name: "unknown zone", url: "/api/v1/reports/summary?tz=Mars/Olympus"},
		{name: "bad anchor", url: "/api/v1/reports/summary?anchor=yesterday"},
		{name: "negative days", url: "/api/v1/reports/summary?days=-3"},
		{name: "oversized days", url: "/api/v1/reports/summary?days=100000000"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.get(tt.url)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockReportingService.AssertNotCalled(suite.T(), "Summary")
}

func (suite *ReportingHandlerTestSuite) TestSummary_StoreUnavailableReturnsEmptyResult() {
	suite.mockReportingService.On("Summary", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, apperrors.ErrStoreUnavailable).Once()

	w := suite.get("/api/v1/reports/summary?period=daily")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var resp struct {
		Error  string                    `json:"error"`
		Result dto.ReportSummaryResponse `json:"result"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to build report summary", resp.Error)
	suite.Equal("daily", resp.Result.Period)
	suite.True(resp.Result.TotalIncome.IsZero())
	suite.True(resp.Result.Balance.IsZero())
	suite.Equal("looks_good", resp.Result.Advisory)
	suite.Empty(resp.Result.ByCategory.Categories)
}

func (suite *ReportingHandlerTestSuite) TestDailySeries() {
	series := &domain.Series{
		Buckets: []domain.SeriesBucket{
			{Label: "Fri", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Income: decimal.Zero, Expense: decimal.NewFromInt(100)},
		},
		MaxValue: decimal.NewFromInt(100),
	}
	suite.mockReportingService.On("DailySeries", mock.Anything, suite.ownerID,
		mock.MatchedBy(func(p dto.ReportParams) bool { return p.SeriesDays == 1 }),
	).Return(series, nil).Once()

	w := suite.get("/api/v1/reports/daily-series?days=1&anchor=2024-03-15")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DailySeriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Buckets, 1)
	suite.Equal("Fri", resp.Buckets[0].Label)
	suite.Equal("2024-03-15", resp.Buckets[0].Date)
	suite.True(resp.MaxSeriesValue.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingHandlerTestSuite) TestDailySeries_OversizedDaysRejected() {
	w := suite.get("/api/v1/reports/daily-series?days=100000000")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "DailySeries")
}

func (suite *ReportingHandlerTestSuite) TestCategoryReport() {
	breakdown := &domain.CategoryBreakdown{
		Categories: []domain.CategoryTotal{
			{Category: "Rent", Net: decimal.NewFromInt(-900), TransactionCount: 1},
			{Category: "Food", Net: decimal.NewFromInt(-16), TransactionCount: 2},
		},
		GrandTotal: decimal.NewFromInt(-916),
	}
	suite.mockReportingService.On("CategoryReport", mock.Anything, suite.ownerID,
		mock.MatchedBy(func(p dto.ReportParams) bool { return p.SortCategories }),
	).Return(breakdown, nil).Once()

	w := suite.get("/api/v1/reports/categories?sort=true")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryBreakdownResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Categories, 2)
	suite.Equal("Rent", resp.Categories[0].Category)
	suite.True(resp.GrandTotal.Equal(decimal.NewFromInt(-916)))
}

func (suite *ReportingHandlerTestSuite) TestListCategories() {
	w := suite.get("/api/v1/categories?kind=income")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("income", resp.Kind)
	suite.Equal(domain.SuggestedCategories(domain.Income), resp.Categories)

	w = suite.get("/api/v1/categories?kind=transfer")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestCategoryDetail() {
	detail := &domain.CategoryDetail{
		Category: "Food",
		Transactions: []domain.Transaction{
			{TransactionID: uuid.NewString(), OwnerID: suite.ownerID, Kind: domain.Expense, Category: "Food", Amount: decimal.NewFromInt(26)},
			{TransactionID: uuid.NewString(), OwnerID: suite.ownerID, Kind: domain.Income, Category: "Food", Amount: decimal.NewFromInt(10)},
		},
		Net: decimal.NewFromInt(-16),
	}
	suite.mockReportingService.On("CategoryDetail", mock.Anything, suite.ownerID, "Food").Return(detail, nil).Once()

	w := suite.get("/api/v1/categories/Food")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryDetailResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Food", resp.Category)
	suite.Len(resp.Transactions, 2)
	suite.True(resp.Net.Equal(decimal.NewFromInt(-16)))
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
