package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"zero page", "page=0", 1, 20, 0},
		{"negative limit", "limit=-5", 1, 20, 0},
		{"non-numeric", "page=abc&limit=xyz", 1, 20, 0},
		// over-cap limits clamp to the cap instead of collapsing to the default
		{"limit above cap", "limit=150", 1, 100, 0},
		{"limit at cap", "limit=100", 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			params := GetPaginationParams(c)
			require.Equal(t, tt.wantPage, params.Page)
			require.Equal(t, tt.wantLimit, params.Limit)
			require.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}
