package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/httputil"
	"github.com/darkkaiser/task-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/task-server/internal/service/contract/mocks"
	"github.com/darkkaiser/task-server/internal/service/task"
	"github.com/darkkaiser/task-server/internal/service/task/idgen"
	"github.com/darkkaiser/task-server/internal/service/task/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Test Helpers
// =============================================================================

// setupTestServer 메모리 저장소 위에서 실제 작업 서비스를 구동하고 라우트를 등록합니다.
func setupTestServer(t *testing.T, workDuration time.Duration) *echo.Echo {
	t.Helper()

	store := storage.NewMemoryStore(storage.Options{CancelPollInterval: time.Second})
	svc := task.NewService(config.TaskConfig{
		WorkDuration:       workDuration,
		ShutdownTimeout:    5 * time.Second,
		StatusWriteTimeout: time.Second,
	}, store, idgen.Generator{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
		_ = store.Close()
	})

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	RegisterRoutes(e, handler.NewHandler(svc))

	return e
}

func doRequest(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func statusOf(t *testing.T, e *echo.Echo, id string) string {
	t.Helper()

	rec := doRequest(e, http.MethodGet, "/api/v1/tasks/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	return gjson.Get(rec.Body.String(), "status").String()
}

// =============================================================================
// Route Registration
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, handler.NewHandler(&mocks.MockTaskLifecycle{}))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/tasks",
		"GET /api/v1/tasks/:task_id",
		"POST /api/v1/tasks/:task_id/cancel",
		"GET /start",
		"GET /status/:task_id",
		"GET /cancel/:task_id",
	} {
		assert.True(t, registered[route], "라우트 미등록: %s", route)
	}

	assert.False(t, registered["GET /api/v1/tasks"], "작업 시작은 POST만 허용해야 합니다")
}

// =============================================================================
// End-to-End Flows
// =============================================================================

func TestRoutes_StartThenFinish(t *testing.T) {
	e := setupTestServer(t, 50*time.Millisecond)

	rec := doRequest(e, http.MethodPost, "/api/v1/tasks")
	require.Equal(t, http.StatusAccepted, rec.Code)

	id := gjson.Get(rec.Body.String(), "task_id").String()
	require.Len(t, id, idgen.Length)

	require.Eventually(t, func() bool {
		return statusOf(t, e, id) == "finished"
	}, 3*time.Second, 10*time.Millisecond)
}

func TestRoutes_StartThenCancel(t *testing.T) {
	e := setupTestServer(t, time.Minute)

	rec := doRequest(e, http.MethodPost, "/api/v1/tasks")
	require.Equal(t, http.StatusAccepted, rec.Code)
	id := gjson.Get(rec.Body.String(), "task_id").String()

	require.Eventually(t, func() bool {
		return statusOf(t, e, id) == "started"
	}, 3*time.Second, 10*time.Millisecond)

	rec = doRequest(e, http.MethodPost, "/api/v1/tasks/"+id+"/cancel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, gjson.Get(rec.Body.String(), "task_id").String())
	assert.Contains(t, []string{"started", "cancelled"}, gjson.Get(rec.Body.String(), "status").String(),
		"취소 직후 상태는 아직 반영 전일 수 있습니다")

	require.Eventually(t, func() bool {
		return statusOf(t, e, id) == "cancelled"
	}, 3*time.Second, 10*time.Millisecond)

	// 종료된 작업의 재취소는 상태를 바꾸지 않습니다.
	rec = doRequest(e, http.MethodPost, "/api/v1/tasks/"+id+"/cancel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", gjson.Get(rec.Body.String(), "status").String())
}

func TestRoutes_UnknownAndInvalidTask(t *testing.T) {
	e := setupTestServer(t, time.Minute)

	t.Run("기록 없는 작업은 unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", statusOf(t, e, "does-not-exist"))

		rec := doRequest(e, http.MethodPost, "/api/v1/tasks/does-not-exist/cancel")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "unknown", gjson.Get(rec.Body.String(), "status").String())
	})

	t.Run("너무 긴 작업 ID는 400", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/tasks/"+strings.Repeat("a", 129))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int64(http.StatusBadRequest), gjson.Get(rec.Body.String(), "result_code").Int())
		assert.NotEmpty(t, gjson.Get(rec.Body.String(), "message").String())
	})
}

func TestRoutes_Legacy(t *testing.T) {
	e := setupTestServer(t, time.Minute)

	rec := doRequest(e, http.MethodGet, "/start")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(constants.XAPIDeprecated))
	assert.Equal(t, "/api/v1/tasks", rec.Header().Get(constants.XAPIDeprecatedReplacement))

	id := gjson.Get(rec.Body.String(), "task_id").String()
	require.NotEmpty(t, id)

	require.Eventually(t, func() bool {
		rec := doRequest(e, http.MethodGet, "/status/"+id)
		return rec.Code == http.StatusOK && gjson.Get(rec.Body.String(), "status").String() == "started"
	}, 3*time.Second, 10*time.Millisecond)

	rec = doRequest(e, http.MethodGet, "/cancel/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/v1/tasks/:task_id/cancel", rec.Header().Get(constants.XAPIDeprecatedReplacement))

	require.Eventually(t, func() bool {
		return statusOf(t, e, id) == "cancelled"
	}, 3*time.Second, 10*time.Millisecond)
}
