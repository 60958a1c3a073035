package task

import (
	"context"
	"time"

	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
)

// Work 취소 가능한 작업 단위입니다.
//
// 구현체는 다음 규칙을 따라야 합니다.
//   - 시작 시 started를 기록합니다.
//   - 정상 완료 시 finished를 기록하고 nil을 반환합니다.
//   - ctx가 취소되면 Recorder.RecordFinal로 cancelled를 기록한 뒤 ctx.Err()를 반환합니다.
//
// ctx 취소와 무관한 에러를 반환하거나 패닉이 발생하면 Coordinator가 failed를 기록합니다.
type Work interface {
	Execute(ctx context.Context, id contract.TaskID, rec Recorder) error
}

// WorkFunc 일반 함수를 Work로 사용할 수 있게 해주는 어댑터입니다.
type WorkFunc func(ctx context.Context, id contract.TaskID, rec Recorder) error

func (f WorkFunc) Execute(ctx context.Context, id contract.TaskID, rec Recorder) error {
	return f(ctx, id, rec)
}

// TimedWork 지정된 시간 동안 대기한 후 완료되는 기본 작업입니다.
type TimedWork struct {
	Duration time.Duration
}

func (w TimedWork) Execute(ctx context.Context, id contract.TaskID, rec Recorder) error {
	// 시작 전에 이미 취소 신호가 도착한 경우에도 cancelled를 남깁니다.
	if err := rec.Record(ctx, contract.TaskStatusStarted); err != nil {
		if ctx.Err() != nil {
			return recordCancelled(ctx, id, rec)
		}
		return err
	}

	timer := time.NewTimer(w.Duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return rec.RecordFinal(ctx, contract.TaskStatusFinished)

	case <-ctx.Done():
		return recordCancelled(ctx, id, rec)
	}
}

// recordCancelled cancelled를 기록하고 ctx.Err()를 반환합니다. 기록 실패는 로그로만 남깁니다.
func recordCancelled(ctx context.Context, id contract.TaskID, rec Recorder) error {
	if err := rec.RecordFinal(ctx, contract.TaskStatusCancelled); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"task_id": id,
			"error":   err,
		}).Error("작업 취소 상태 기록 실패")
	}
	return ctx.Err()
}
