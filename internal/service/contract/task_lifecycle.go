package contract

import (
	"context"
)

// TaskLifecycle 작업 시작, 상태 조회, 취소 요청을 제공하는 제어 인터페이스입니다.
type TaskLifecycle interface {
	// StartTask 새 작업 ID를 발급하고 작업을 백그라운드에서 실행한 뒤 즉시 반환합니다.
	StartTask(ctx context.Context) (TaskID, error)

	// Status 작업의 현재 상태를 반환합니다. 기록이 없으면 TaskStatusUnknown입니다.
	Status(ctx context.Context, id TaskID) (TaskStatus, error)

	// Cancel 작업이 started 상태일 때만 취소 신호를 보내고, 요청 이후의 상태를 다시 읽어 반환합니다.
	Cancel(ctx context.Context, id TaskID) (TaskStatus, error)

	// Running 현재 진행 중인 작업 경합의 개수를 반환합니다.
	Running() int
}

// HealthChecker 외부 의존성의 상태를 보고합니다.
type HealthChecker interface {
	// Health 마지막 점검 결과를 반환합니다. 정상이면 nil입니다.
	Health() error
}
