// Package v1 작업 서버 API의 v1 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/tasks                  - 작업 시작
//   - GET  /api/v1/tasks/:task_id         - 작업 상태 조회
//   - POST /api/v1/tasks/:task_id/cancel  - 작업 취소
//
// 최초 버전의 엔드포인트(GET /start, /status/:task_id, /cancel/:task_id)도 함께 등록되며,
// 응답에 deprecated 경고 헤더가 추가됩니다.
package v1

import (
	"github.com/darkkaiser/task-server/internal/service/api/middleware"
	"github.com/darkkaiser/task-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트와 레거시 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.POST("/tasks", h.StartTaskHandler)
	v1Group.GET("/tasks/:task_id", h.GetTaskStatusHandler)
	v1Group.POST("/tasks/:task_id/cancel", h.CancelTaskHandler)

	registerLegacyRoutes(e, h)
}

// registerLegacyRoutes 레거시 엔드포인트를 등록합니다. 응답 형식은 v1과 같고 상태 변경도 GET으로 수행합니다.
func registerLegacyRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/start", h.LegacyStartTaskHandler,
		middleware.DeprecatedEndpoint("/api/v1/tasks"),
	)
	e.GET("/status/:task_id", h.GetTaskStatusHandler,
		middleware.DeprecatedEndpoint("/api/v1/tasks/:task_id"),
	)
	e.GET("/cancel/:task_id", h.CancelTaskHandler,
		middleware.DeprecatedEndpoint("/api/v1/tasks/:task_id/cancel"),
	)
}
