package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	newServer := func() *echo.Echo {
		e := echo.New()
		e.Use(RequestID())
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		return e
	}

	t.Run("새 요청 ID 발급", func(t *testing.T) {
		t.Parallel()

		e := newServer()
		seen := make(map[string]struct{})
		for i := 0; i < 50; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			id := rec.Header().Get(echo.HeaderXRequestID)
			assert.Len(t, id, constants.RequestIDLength)
			assert.NotContains(t, seen, id, "요청 ID는 중복되지 않아야 합니다")
			seen[id] = struct{}{}
		}
	})

	t.Run("클라이언트 요청 ID 유지", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()
		newServer().ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", rec.Header().Get(echo.HeaderXRequestID))
	})
}
