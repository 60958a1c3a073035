package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/pkg/version"
	"github.com/darkkaiser/task-server/internal/service"
	"github.com/darkkaiser/task-server/internal/service/api"
	"github.com/darkkaiser/task-server/internal/service/monitor"
	"github.com/darkkaiser/task-server/internal/service/task"
	"github.com/darkkaiser/task-server/internal/service/task/idgen"
	"github.com/darkkaiser/task-server/internal/service/task/storage"
	applog "github.com/darkkaiser/task-server/pkg/log"
)

// @title Task Server API
// @version 1.0.0
// @description 취소 가능한 백그라운드 작업을 시작하고, 상태를 조회하고, 취소하는 서버의 REST API입니다.
// @description
// @description ## 작업 상태
// @description - unknown: 기록이 없는 작업
// @description - started: 실행 중
// @description - finished: 정상 완료
// @description - cancelled: 취소 요청으로 중단됨
// @description - failed: 실행 중 오류 발생
// @description
// @description 작업 상태는 공유 저장소(Redis)에 기록되므로 여러 서버 인스턴스가 같은 작업을 조회하고 취소할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const componentMain = "main"

const (
	banner = `
  _____             _       ____
 |_   _|__ _  ___  | | __  / ___|   ___  _ __ __   __  ___  _ __
   | | / _' |/ __| | |/ /  \___ \  / _ \| '__|\ \ / / / _ \| '__|
   | || (_| |\__ \ |   <    ___) ||  __/| |    \ V / |  __/| |
   |_| \__,_||___/ |_|\_\  |____/  \___||_|     \_/   \___||_|
                                                          %s
                                                   developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	exitCode := 0
	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Error("서버 실행 실패로 프로그램을 종료합니다")
		exitCode = 1
	}

	_ = appLogCloser.Close()
	os.Exit(exitCode)
}

// run 저장소에 연결하고 서비스를 구동한 뒤, 종료 시그널을 받으면 모든 서비스를 정리하고 반환합니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	applog.WithComponentAndFields(componentMain, applog.Fields{
		"version":      buildInfo.String(),
		"env":          map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"store_driver": appConfig.Store.Driver,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	// 저장소 연결 재시도 중에도 시그널로 중단할 수 있어야 합니다.
	signalCtx, stopSignal := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignal()

	store, err := storage.Open(signalCtx, appConfig.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"error": err,
			}).Warn("저장소 연결 해제 실패")
		}
	}()

	monitorService := monitor.NewService(appConfig.Health, store)
	taskService := task.NewService(appConfig.Task, store, idgen.Generator{}, nil)
	apiService := api.NewService(appConfig, taskService, monitorService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(signalCtx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	if err := startServices(serviceStopCtx, serviceStopWG, []service.Service{monitorService, taskService, apiService}); err != nil {
		cancel()
		serviceStopWG.Wait()
		return err
	}

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent(componentMain).Info("종료 시그널 수신: 모든 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(componentMain).Info("서버 종료 완료")

	return nil
}

// startServices 서비스를 순서대로 시작합니다. 하나라도 실패하면 즉시 에러를 반환하며,
// 이미 시작된 서비스의 정리는 호출자가 serviceStopCtx를 취소하여 수행합니다.
func startServices(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, services []service.Service) error {
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"service": fmt.Sprintf("%T", s),
				"error":   err,
			}).Error("서비스 초기화 실패")

			return err
		}
	}
	return nil
}
