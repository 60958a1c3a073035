package task

import (
	"context"
	"time"

	"github.com/darkkaiser/task-server/internal/service/contract"
)

// Recorder 작업이 자신의 상태를 저장소에 기록할 때 사용합니다.
type Recorder interface {
	// Record 전달된 ctx로 상태를 기록합니다.
	Record(ctx context.Context, status contract.TaskStatus) error

	// RecordFinal 종료 상태를 기록합니다. ctx가 이미 취소되었더라도 쓰기 제한 시간 안에서 기록을 시도합니다.
	RecordFinal(ctx context.Context, status contract.TaskStatus) error
}

type statusRecorder struct {
	store        contract.TaskStatusStore
	id           contract.TaskID
	writeTimeout time.Duration
}

func newStatusRecorder(store contract.TaskStatusStore, id contract.TaskID, writeTimeout time.Duration) *statusRecorder {
	return &statusRecorder{
		store:        store,
		id:           id,
		writeTimeout: writeTimeout,
	}
}

func (r *statusRecorder) Record(ctx context.Context, status contract.TaskStatus) error {
	return r.store.SetStatus(ctx, r.id, status)
}

func (r *statusRecorder) RecordFinal(ctx context.Context, status contract.TaskStatus) error {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	return r.store.SetStatus(writeCtx, r.id, status)
}
