package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLogger(t *testing.T) {
	t.Run("요청 정보 기록", func(t *testing.T) {
		buf := captureLogs(t)

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/status/:task_id", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/status/abc?token=secret-token-value", nil)
		req.Header.Set("User-Agent", "task-client/1.0")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		entry := lastLogEntry(t, buf)
		assert.Equal(t, constants.LogMsgHTTPRequest, entry["msg"])
		assert.Equal(t, http.MethodGet, entry["method"])
		assert.Equal(t, "/status/abc", entry["path"])
		assert.Equal(t, "task-client/1.0", entry["user_agent"])
		assert.EqualValues(t, http.StatusOK, entry["status"])
		assert.Equal(t, "2", entry["bytes_out"])
		assert.Equal(t, defaultBytesIn, entry["bytes_in"])
		assert.NotContains(t, entry["uri"], "secret-token-value", "민감 정보는 마스킹되어야 합니다")
	})

	t.Run("핸들러 에러의 최종 상태 코드 기록", func(t *testing.T) {
		buf := captureLogs(t)

		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		e.Use(HTTPLogger())
		e.GET("/", func(c echo.Context) error {
			return httputil.NewServiceUnavailableError("점검 중")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		entry := lastLogEntry(t, buf)
		assert.Equal(t, constants.LogMsgHTTPRequest, entry["msg"])
		assert.EqualValues(t, http.StatusServiceUnavailable, entry["status"])
	})
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"민감 정보 없음", "/status/abc?verbose=1", "/status/abc?verbose=1"},
		{"쿼리 없음", "/start", "/start"},
		{"토큰 마스킹", "/start?token=abcdefgh", "/start?token=abcd%2A%2A%2A"},
		{"여러 파라미터 중 민감 정보만 마스킹", "/start?id=1&password=abc", "/start?id=1&password=%2A%2A%2A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}
