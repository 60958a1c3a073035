// Package monitor 외부 저장소의 상태를 주기적으로 점검하는 서비스를 제공합니다.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/darkkaiser/task-server/pkg/cronx"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 모니터 서비스의 로깅용 컴포넌트 이름
const component = "monitor.service"

// Pinger 상태 점검 대상입니다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Report 마지막 상태 점검 결과입니다.
type Report struct {
	Healthy   bool
	Err       error
	Latency   time.Duration
	CheckedAt time.Time
}

// Service Cron 스케줄에 맞춰 저장소에 PING을 보내고 마지막 결과를 보관합니다.
//
// 정상과 비정상 사이의 전환이 일어날 때만 Info/Error 로그를 남깁니다.
type Service struct {
	healthConfig config.HealthConfig

	pinger Pinger

	cron *cron.Cron

	reportMu sync.RWMutex
	report   Report
	checked  bool

	running   bool
	runningMu sync.Mutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.HealthChecker = (*Service)(nil)

// NewService 모니터 서비스를 생성합니다.
func NewService(healthConfig config.HealthConfig, pinger Pinger) *Service {
	if pinger == nil {
		panic("Pinger는 필수입니다")
	}

	return &Service{
		healthConfig: healthConfig,

		pinger: pinger,
	}
}

// Start 최초 점검을 1회 수행한 뒤 점검 스케줄을 시작합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 모니터 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("모니터 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := s.cron.AddFunc(s.healthConfig.TimeSpec, func() { s.Check(serviceStopCtx) }); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.healthConfig.TimeSpec, err)
	}

	s.Check(serviceStopCtx)

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.healthConfig.TimeSpec,
	}).Info("서비스 시작 완료: 모니터 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 점검 스케줄을 중지하고 진행 중인 점검이 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 모니터 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("모니터 서비스 종료 완료")
}

// Check 저장소 상태를 즉시 점검하고 결과를 반환합니다.
func (s *Service) Check(ctx context.Context) Report {
	pingCtx, cancel := context.WithTimeout(ctx, s.healthConfig.PingTimeout)
	defer cancel()

	start := time.Now()
	err := s.pinger.Ping(pingCtx)
	report := Report{
		Healthy:   err == nil,
		Err:       err,
		Latency:   time.Since(start),
		CheckedAt: start,
	}

	s.reportMu.Lock()
	prev, checked := s.report, s.checked
	s.report, s.checked = report, true
	s.reportMu.Unlock()

	fields := applog.Fields{
		"latency": report.Latency.String(),
	}
	switch {
	case !report.Healthy && (!checked || prev.Healthy):
		fields["error"] = err
		applog.WithComponentAndFields(component, fields).Error("저장소 상태 이상 감지: 응답이 없습니다")
	case report.Healthy && checked && !prev.Healthy:
		applog.WithComponentAndFields(component, fields).Info("저장소 상태 복구: 정상 응답을 확인했습니다")
	case report.Healthy && !checked:
		applog.WithComponentAndFields(component, fields).Info("저장소 상태 정상")
	default:
		applog.WithComponentAndFields(component, fields).Debug("저장소 상태 점검 완료")
	}

	return report
}

// Report 마지막 점검 결과를 반환합니다. 점검 전이면 false를 반환합니다.
func (s *Service) Report() (Report, bool) {
	s.reportMu.RLock()
	defer s.reportMu.RUnlock()

	return s.report, s.checked
}

// Health 마지막 점검 결과의 에러를 반환합니다.
func (s *Service) Health() error {
	report, checked := s.Report()
	if !checked {
		return ErrNotChecked
	}
	return report.Err
}
