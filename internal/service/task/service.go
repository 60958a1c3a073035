package task

import (
	"context"
	"sync"

	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
)

// component Task 서비스의 로깅용 컴포넌트 이름
const component = "task.service"

// Service 작업의 시작, 상태 조회, 취소 요청을 처리하는 Task 서비스입니다.
//
// 작업의 상태와 취소 신호는 모두 외부 저장소를 통해 공유되므로, 같은 저장소를 사용하는
// 다른 서버 인스턴스에서 시작된 작업도 조회하고 취소할 수 있습니다.
// 서비스 내부에는 작업 목록을 보관하지 않습니다.
type Service struct {
	taskConfig config.TaskConfig

	store contract.TaskStore

	// idGenerator 각 작업에 부여할 전역 고유 식별자를 발급합니다.
	idGenerator contract.TaskIDGenerator

	coordinator *Coordinator

	// slots 동시 실행 한도만큼의 버퍼를 가진 세마포어. MaxRunning이 0 이하이면 nil(무제한)입니다.
	slots chan struct{}

	// lifetimeCtx 서비스가 실행되는 동안 유지되는 ctx. 모든 작업 경합은 요청 ctx가 아닌 이 ctx에서 실행됩니다.
	lifetimeCtx context.Context

	running   bool
	runningMu sync.Mutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.TaskLifecycle = (*Service)(nil)

// NewService Task 서비스를 생성합니다. work가 nil이면 설정된 시간만큼 대기하는 기본 작업을 사용합니다.
func NewService(taskConfig config.TaskConfig, store contract.TaskStore, idGenerator contract.TaskIDGenerator, work Work) *Service {
	if store == nil {
		panic("TaskStore는 필수입니다")
	}
	if idGenerator == nil {
		panic("TaskIDGenerator는 필수입니다")
	}
	if work == nil {
		work = TimedWork{Duration: taskConfig.WorkDuration}
	}

	var slots chan struct{}
	if taskConfig.MaxRunning > 0 {
		slots = make(chan struct{}, taskConfig.MaxRunning)
	}

	return &Service{
		taskConfig: taskConfig,

		store: store,

		idGenerator: idGenerator,

		coordinator: NewCoordinator(store, work, taskConfig.StatusWriteTimeout),

		slots: slots,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start Task 서비스를 시작합니다.
//
// serviceStopCtx가 취소되면 실행 중인 모든 작업을 취소하고, 각 작업이 최종 상태(cancelled)를
// 기록할 때까지 최대 ShutdownTimeout 동안 기다린 후 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Task 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Task 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.running = true
	s.lifetimeCtx = serviceStopCtx

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	applog.WithComponent(component).Info("서비스 시작 완료: Task 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// waitForShutdown 종료 신호를 기다린 후 실행 중인 작업이 정리될 때까지 대기합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponentAndFields(component, applog.Fields{
		"running_tasks": s.coordinator.Running(),
	}).Info("종료 절차 진입: Task 서비스 중지 시그널을 수신했습니다")

	// running을 먼저 해제하여 종료 중에 새로운 작업이 시작되지 않도록 합니다.
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	waitCtx, cancel := context.WithTimeout(context.Background(), s.taskConfig.ShutdownTimeout)
	defer cancel()

	if err := s.coordinator.Wait(waitCtx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"timeout":       s.taskConfig.ShutdownTimeout.String(),
			"running_tasks": s.coordinator.Running(),
		}).Warn("종료 대기 시간 초과: 일부 작업의 최종 상태가 기록되지 않았을 수 있습니다")
		return
	}

	applog.WithComponent(component).Info("종료 절차 완료: 모든 작업이 정리되었습니다")
}

// StartTask 새 작업 ID를 발급하고 작업을 백그라운드에서 시작한 뒤 즉시 반환합니다.
//
// 반환 시점에 상태가 아직 기록되지 않았을 수 있습니다. (이 경우 조회 결과는 unknown)
// 작업은 요청 ctx와 무관하게 서비스가 종료될 때까지 실행됩니다.
// 동시 실행 한도에 도달한 경우 대기하지 않고 ErrTooManyRunningTasks를 반환합니다.
func (s *Service) StartTask(_ context.Context) (contract.TaskID, error) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return "", ErrServiceNotRunning
	}

	release, ok := s.acquireSlot()
	if !ok {
		applog.WithComponentAndFields(component, applog.Fields{
			"max_running": s.taskConfig.MaxRunning,
		}).Warn("작업 시작 거부: 동시 실행 한도에 도달했습니다")

		return "", ErrTooManyRunningTasks
	}

	id := s.idGenerator.New()

	s.coordinator.GoWithRelease(s.lifetimeCtx, id, release)

	applog.WithComponentAndFields(component, applog.Fields{
		"task_id": id,
	}).Info("작업 시작")

	return id, nil
}

// acquireSlot 동시 실행 한도 내에서 자리를 1개 확보합니다. 한도가 없으면 항상 성공합니다.
func (s *Service) acquireSlot() (release func(), ok bool) {
	if s.slots == nil {
		return nil, true
	}

	select {
	case s.slots <- struct{}{}:
		return func() { <-s.slots }, true
	default:
		return nil, false
	}
}

// Status 작업의 현재 상태를 반환합니다. 저장소에 기록이 없으면 unknown입니다.
func (s *Service) Status(ctx context.Context, id contract.TaskID) (contract.TaskStatus, error) {
	if err := id.Validate(); err != nil {
		return contract.TaskStatusUnknown, err
	}

	status, found, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return contract.TaskStatusUnknown, newErrStatusLookupFailed(err, id)
	}
	if !found {
		return contract.TaskStatusUnknown, nil
	}

	return status, nil
}

// Cancel 작업이 started 상태인 경우에만 취소 신호를 보내고, 요청 이후의 상태를 다시 읽어 반환합니다.
//
// 그 외의 상태(unknown, finished, cancelled, failed)에서는 신호를 보내지 않고 현재 상태를 그대로 반환합니다.
// 조회와 신호 전송 사이에 작업이 끝난 경우 적재된 신호는 소비되지 않고 남을 수 있습니다.
func (s *Service) Cancel(ctx context.Context, id contract.TaskID) (contract.TaskStatus, error) {
	status, err := s.Status(ctx, id)
	if err != nil {
		return contract.TaskStatusUnknown, err
	}

	if status != contract.TaskStatusStarted {
		applog.WithComponentAndFields(component, applog.Fields{
			"task_id": id,
			"status":  status,
		}).Debug("작업 취소 무시: 실행 중인 작업이 아닙니다")

		return status, nil
	}

	if err := s.store.PushCancel(ctx, id); err != nil {
		return contract.TaskStatusUnknown, newErrCancelRequestFailed(err, id)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"task_id": id,
	}).Info("작업 취소 신호 전달")

	return s.Status(ctx, id)
}

// Running 승자가 아직 결정되지 않은 작업 경합의 수를 반환합니다.
func (s *Service) Running() int {
	return s.coordinator.Running()
}
