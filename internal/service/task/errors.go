package task

import (
	"fmt"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/internal/service/contract"
)

var (
	// ErrServiceNotRunning Task 서비스가 실행 중이 아닐 때(시작 전 또는 종료 후) 반환되는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "Task 서비스가 현재 실행 중이지 않아 요청을 수행할 수 없습니다")

	// ErrTooManyRunningTasks 동시에 실행 중인 작업 수가 한도(task.max_running)에 도달했을 때 반환되는 에러입니다.
	ErrTooManyRunningTasks = apperrors.New(apperrors.Unavailable, "동시에 실행할 수 있는 작업 수를 초과하였습니다. 잠시 후 다시 시도해 주세요")
)

// newErrWorkPanicked 작업 실행 중 패닉이 발생했을 때 반환할 에러를 생성합니다.
func newErrWorkPanicked(v any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("작업 실행 중 예기치 않은 패닉이 발생하였습니다 (상세: %v)", v))
}

// newErrListenerPanicked 취소 신호 대기 중 패닉이 발생했을 때 반환할 에러를 생성합니다.
func newErrListenerPanicked(v any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("취소 신호 대기 중 예기치 않은 패닉이 발생하였습니다 (상세: %v)", v))
}

// newErrStatusLookupFailed 작업 상태 조회 중 저장소 오류가 발생했을 때 반환할 에러를 생성합니다.
func newErrStatusLookupFailed(err error, id contract.TaskID) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("작업 상태를 조회할 수 없습니다 (task_id: %s)", id))
}

// newErrCancelRequestFailed 취소 신호 전달 중 저장소 오류가 발생했을 때 반환할 에러를 생성합니다.
func newErrCancelRequestFailed(err error, id contract.TaskID) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("작업 취소를 요청할 수 없습니다 (task_id: %s)", id))
}
