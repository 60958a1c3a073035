// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 작업 제어와 무관한 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/task-server/internal/pkg/version"
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/model/system"
	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/darkkaiser/task-server/internal/service/monitor"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// reporter 마지막 점검의 지연시간과 시각까지 제공하는 HealthChecker입니다. (monitor.Service)
type reporter interface {
	Report() (monitor.Report, bool)
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	storeHealth contract.HealthChecker

	tasks contract.TaskLifecycle

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(storeHealth contract.HealthChecker, tasks contract.TaskLifecycle, buildInfo version.Info) *Handler {
	if storeHealth == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}
	if tasks == nil {
		panic(constants.PanicMsgTaskLifecycleRequired)
	}

	return &Handler{
		storeHealth: storeHealth,

		tasks: tasks,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 상태 저장소의 상태, 현재 실행 중인 작업 수를 확인합니다.
// @Description 상태 저장소 점검 결과는 주기적인 모니터링 결과를 사용하므로 호출 시 저장소에 부하를 주지 않습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyStore: h.storeStatus(),
	}

	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		RunningTasks: h.tasks.Running(),
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 릴리즈 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}

func (h *Handler) storeStatus() system.DependencyStatus {
	var dep system.DependencyStatus
	if err := h.storeHealth.Health(); err != nil {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	} else {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: constants.MsgDepStatusHealthy,
		}
	}

	if r, ok := h.storeHealth.(reporter); ok {
		if report, checked := r.Report(); checked {
			dep.LatencyMs = report.Latency.Milliseconds()
			dep.CheckedAt = report.CheckedAt.UTC().Format(time.RFC3339)
		}
	}

	return dep
}
