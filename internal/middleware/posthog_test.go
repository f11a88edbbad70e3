package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsEvent(t *testing.T) {
	tests := []struct {
		method, route string
		name, area    string
	}{
		{http.MethodPost, "/api/v1/leave/transactions", "leave_transactions_created", "leave"},
		{http.MethodDelete, "/api/v1/leave/transactions/:id", "leave_transactions_deleted", "leave"},
		{http.MethodPut, "/api/v1/accounts/:id/grants", "accounts_grants_updated", "accounts"},
		{http.MethodGet, "/api/v1/competitor-prices", "competitor_prices_viewed", "competitor_prices"},
		{http.MethodGet, "/api/v1/sales/summary", "sales_summary_viewed", "sales"},
		{http.MethodGet, "", "", ""},
		{http.MethodOptions, "/api/v1/markets", "", ""},
	}
	for _, tt := range tests {
		name, area := analyticsEvent(tt.method, tt.route)
		assert.Equal(t, tt.name, name, tt.method+" "+tt.route)
		assert.Equal(t, tt.area, area, tt.method+" "+tt.route)
	}
}

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, client := range []*utils.PosthogClientWrapper{nil, {}} {
		r := gin.New()
		r.Use(PosthogMiddleware(client))
		r.POST("/api/v1/markets", func(c *gin.Context) {
			PosthogEvent(c, client, "market_added", map[string]any{"name": "x"})
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/markets", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}
