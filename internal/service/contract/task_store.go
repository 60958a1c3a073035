package contract

import (
	"context"
)

// TaskStatusStore 작업 ID별 최신 상태를 보관하는 공유 저장소입니다.
type TaskStatusStore interface {
	// GetStatus 저장된 상태를 반환합니다. 기록이 없으면 found는 false입니다.
	GetStatus(ctx context.Context, id TaskID) (status TaskStatus, found bool, err error)

	// SetStatus 상태를 무조건 덮어씁니다. 이전 값은 확인하지 않습니다.
	SetStatus(ctx context.Context, id TaskID, status TaskStatus) error
}

// TaskCancelChannel 작업 ID별 취소 신호를 전달하는 블로킹 큐입니다.
type TaskCancelChannel interface {
	// PushCancel 취소 신호 1개를 큐에 적재합니다. 대기 중인 수신자가 없어도 신호는 보존됩니다.
	PushCancel(ctx context.Context, id TaskID) error

	// WaitCancel 취소 신호가 도착할 때까지 블로킹한 후 신호 1개를 소비합니다.
	//
	// ctx가 취소되면 ctx.Err()를 반환합니다. 저장소 오류는 그대로 반환하며
	// 호출자는 이를 대기 종료로 간주합니다.
	WaitCancel(ctx context.Context, id TaskID) error
}

// TaskStore 상태 저장소와 취소 채널을 함께 제공하는 외부 저장소 핸들입니다.
// 모든 메서드는 여러 고루틴에서 동시에 호출해도 안전해야 합니다.
type TaskStore interface {
	TaskStatusStore
	TaskCancelChannel

	// Ping 저장소 연결 상태를 확인합니다.
	Ping(ctx context.Context) error

	Close() error
}

// TaskIDGenerator 충돌하지 않는 새 작업 ID를 생성합니다.
type TaskIDGenerator interface {
	New() TaskID
}
