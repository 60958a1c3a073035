package task

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
)

const coordinatorComponent = "task.coordinator"

// Outcome 작업 경합(race)의 결과입니다. 로그와 테스트에서 승자를 확인하는 용도로만 사용됩니다.
type Outcome int

const (
	// OutcomeWorkCompleted 작업이 먼저 정상 완료됨
	OutcomeWorkCompleted Outcome = iota

	// OutcomeWorkFailed 작업이 먼저 에러(또는 패닉)로 종료됨
	OutcomeWorkFailed

	// OutcomeCancelSignalled 취소 신호가 먼저 도착함
	OutcomeCancelSignalled

	// OutcomeListenerFailed 취소 신호 대기 중 저장소 오류가 먼저 발생함
	OutcomeListenerFailed

	// OutcomeAborted 상위 ctx가 취소되어(서비스 종료) 경합이 중단됨
	OutcomeAborted
)

var outcomeNames = [...]string{
	OutcomeWorkCompleted:   "work_completed",
	OutcomeWorkFailed:      "work_failed",
	OutcomeCancelSignalled: "cancel_signalled",
	OutcomeListenerFailed:  "listener_failed",
	OutcomeAborted:         "aborted",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Coordinator 작업 1건마다 작업 실행과 취소 신호 대기를 동시에 진행하고, 먼저 끝난 쪽으로 결과를 확정합니다.
//
// 진 쪽은 ctx 취소로 정리되며 Run은 그 종료를 기다리지 않습니다.
// 모든 활동 고루틴의 종료는 Wait로 확인할 수 있습니다.
type Coordinator struct {
	store contract.TaskStore
	work  Work

	// statusWriteTimeout 취소/실패 상태를 분리된 ctx로 기록할 때의 제한 시간
	statusWriteTimeout time.Duration

	// activities 경합 및 작업/대기 고루틴의 종료를 추적합니다.
	activities sync.WaitGroup

	// racing 아직 승자가 결정되지 않은 경합의 수
	racing atomic.Int64
}

// NewCoordinator Coordinator를 생성합니다.
func NewCoordinator(store contract.TaskStore, work Work, statusWriteTimeout time.Duration) *Coordinator {
	if store == nil {
		panic("TaskStore는 필수입니다")
	}
	if work == nil {
		panic("Work는 필수입니다")
	}

	return &Coordinator{
		store:              store,
		work:               work,
		statusWriteTimeout: statusWriteTimeout,
	}
}

// Go Run을 별도의 고루틴에서 실행합니다.
func (c *Coordinator) Go(ctx context.Context, id contract.TaskID) {
	c.GoWithRelease(ctx, id, nil)
}

// GoWithRelease Go와 같지만, 진 쪽을 포함한 작업/대기 고루틴이 모두 종료된 후 release를 1회 호출합니다.
//
// 승자가 결정된 직후에도 진 쪽의 취소 신호 대기는 CancelPollInterval 동안 저장소 연결을 점유할 수 있으므로,
// 동시 실행 한도는 release 시점에 반납해야 실제 연결 사용량과 일치합니다.
func (c *Coordinator) GoWithRelease(ctx context.Context, id contract.TaskID, release func()) {
	c.activities.Add(1)

	go func() {
		defer c.activities.Done()
		c.run(ctx, id, release)
	}()
}

// Run 작업과 취소 신호 대기를 동시에 시작하고, 둘 중 하나가 끝나는 즉시 나머지를 취소한 후 반환합니다.
func (c *Coordinator) Run(ctx context.Context, id contract.TaskID) Outcome {
	return c.run(ctx, id, nil)
}

func (c *Coordinator) run(ctx context.Context, id contract.TaskID, release func()) Outcome {
	c.racing.Add(1)
	defer c.racing.Add(-1)

	// 두 활동 고루틴 중 마지막으로 종료되는 쪽이 release를 호출합니다.
	finish := func() {}
	if release != nil {
		var left atomic.Int32
		left.Store(2)
		finish = func() {
			if left.Add(-1) == 0 {
				release()
			}
		}
	}

	workCtx, cancelWork := context.WithCancel(ctx)
	listenCtx, cancelListen := context.WithCancel(ctx)

	rec := newStatusRecorder(c.store, id, c.statusWriteTimeout)

	// 진 쪽이 결과를 보낼 때 블로킹되지 않도록 버퍼를 둡니다.
	workDoneC := make(chan error, 1)
	listenDoneC := make(chan error, 1)

	c.activities.Add(2)
	go func() {
		defer c.activities.Done()
		defer finish()
		defer cancelWork()

		workDoneC <- c.runWork(workCtx, id, rec)
	}()
	go func() {
		defer c.activities.Done()
		defer finish()
		defer cancelListen()

		listenDoneC <- c.runListener(listenCtx, id)
	}()

	var outcome Outcome
	var cause error

	select {
	case err := <-workDoneC:
		cancelListen()

		switch {
		case err == nil:
			outcome = OutcomeWorkCompleted
		case ctx.Err() != nil:
			outcome = OutcomeAborted
		default:
			outcome, cause = OutcomeWorkFailed, err
		}

	case err := <-listenDoneC:
		cancelWork()

		switch {
		case err == nil:
			outcome = OutcomeCancelSignalled
		case ctx.Err() != nil:
			outcome = OutcomeAborted
		default:
			outcome, cause = OutcomeListenerFailed, err
		}
	}

	fields := applog.Fields{
		"task_id": id,
		"outcome": outcome.String(),
	}
	switch outcome {
	case OutcomeWorkFailed, OutcomeListenerFailed:
		fields["error"] = cause
		applog.WithComponentAndFields(coordinatorComponent, fields).Error("작업 경합 종료: 오류로 인해 결과가 확정되었습니다")
	case OutcomeAborted:
		applog.WithComponentAndFields(coordinatorComponent, fields).Warn("작업 경합 중단: 서비스 종료로 작업을 취소합니다")
	default:
		applog.WithComponentAndFields(coordinatorComponent, fields).Info("작업 경합 종료")
	}

	return outcome
}

// runWork 작업을 실행합니다. 작업이 자신의 ctx 취소와 무관하게 실패하거나 패닉이 발생하면 failed를 기록합니다.
func (c *Coordinator) runWork(ctx context.Context, id contract.TaskID, rec *statusRecorder) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newErrWorkPanicked(r)

			applog.WithComponentAndFields(coordinatorComponent, applog.Fields{
				"task_id": id,
				"panic":   r,
				"stack":   string(debug.Stack()),
			}).Error("작업 실행 중 패닉 발생")
		}

		if err != nil && ctx.Err() == nil {
			if writeErr := rec.RecordFinal(ctx, contract.TaskStatusFailed); writeErr != nil {
				applog.WithComponentAndFields(coordinatorComponent, applog.Fields{
					"task_id": id,
					"error":   writeErr,
				}).Error("작업 실패 상태 기록 실패")
			}
		}
	}()

	return c.work.Execute(ctx, id, rec)
}

func (c *Coordinator) runListener(ctx context.Context, id contract.TaskID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newErrListenerPanicked(r)
		}
	}()

	return c.store.WaitCancel(ctx, id)
}

// Running 승자가 아직 결정되지 않은 경합의 수를 반환합니다.
func (c *Coordinator) Running() int {
	return int(c.racing.Load())
}

// Wait 진 쪽을 포함한 모든 활동 고루틴이 종료될 때까지 대기합니다.
// ctx가 먼저 취소되면 ctx.Err()를 반환합니다.
//
// 대기 중에 새로운 Run/Go를 호출해서는 안 됩니다.
func (c *Coordinator) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.activities.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
