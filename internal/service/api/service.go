// Package api 작업 제어 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/task-server/docs"
	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/pkg/version"
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/task-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/task-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 작업 제어 API 서버의 생명주기를 관리합니다.
//
// Start()로 시작하면 별도 고루틴에서 HTTP(S) 서버를 실행하고,
// serviceStopCtx가 취소되면 DefaultShutdownTimeout 안에서 Graceful Shutdown을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	tasks       contract.TaskLifecycle
	storeHealth contract.HealthChecker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, tasks contract.TaskLifecycle, storeHealth contract.HealthChecker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if tasks == nil {
		panic(constants.PanicMsgTaskLifecycleRequired)
	}
	if storeHealth == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Service{
		appConfig: appConfig,

		tasks:       tasks,
		storeHealth: storeHealth,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환합니다.
//
// 이미 실행 중이면 serviceStopWG.Done()을 호출하고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러 생성, 미들웨어 체인 구성, 라우트 등록을 마친 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.storeHealth, s.tasks, s.buildInfo)
	taskHandler := v1handler.NewHandler(s.tasks)

	httpConfig := s.appConfig.HTTP
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         httpConfig.TLSServer,
		AllowOrigins:       httpConfig.CORS.AllowOrigins,
		RequestTimeout:     httpConfig.RequestTimeout,
		RateLimitPerSecond: httpConfig.RateLimitPerSecond,
		RateLimitBurst:     httpConfig.RateLimitBurst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, taskHandler)

	return e
}

// startHTTPServer HTTP(S) 서버를 실행합니다. 서버가 종료될 때까지 블로킹되며, 종료 시 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpConfig := s.appConfig.HTTP
	address := fmt.Sprintf(":%d", httpConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpConfig.ListenPort,
		"tls":  httpConfig.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if httpConfig.TLSServer {
		err = e.StartTLS(address, httpConfig.TLSCertFile, httpConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 종료 원인을 기록합니다. http.ErrServerClosed는 정상 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 이미 종료되었으므로 Shutdown 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
