package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/internal/service/contract"
)

var (
	// ErrStoreClosed 이미 닫힌 저장소를 사용하려 할 때 반환하는 에러입니다.
	ErrStoreClosed = apperrors.New(apperrors.Unavailable, "저장소가 이미 종료되었습니다")
)

// NewErrUnsupportedDriver 설정된 저장소 드라이버를 지원하지 않을 때 반환하는 에러를 생성합니다.
func NewErrUnsupportedDriver(driver string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 저장소 드라이버입니다: '%s'", driver))
}

// NewErrConnectFailed 시작 시 저장소 연결(재시도 포함)에 최종 실패했을 때 반환하는 에러를 생성합니다.
func NewErrConnectFailed(err error, addr string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("저장소 연결 실패: Redis 서버에 연결할 수 없습니다 (addr: %s)", addr))
}

// NewErrPingFailed 저장소 상태 확인에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPingFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "저장소 상태 확인 실패: 응답이 없습니다")
}

// NewErrStatusReadFailed 작업 상태 조회에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrStatusReadFailed(err error, id contract.TaskID) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("작업 상태 조회 실패: 저장소 오류가 발생했습니다 (task_id: %s)", id))
}

// NewErrStatusWriteFailed 작업 상태 기록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrStatusWriteFailed(err error, id contract.TaskID, status contract.TaskStatus) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("작업 상태 기록 실패: 저장소 오류가 발생했습니다 (task_id: %s, status: %s)", id, status))
}

// NewErrCancelPushFailed 취소 신호 적재에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrCancelPushFailed(err error, id contract.TaskID) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("취소 요청 실패: 취소 신호를 전달할 수 없습니다 (task_id: %s)", id))
}

// NewErrCancelWaitFailed 취소 신호 대기 중 저장소 오류가 발생했을 때 반환하는 에러를 생성합니다.
func NewErrCancelWaitFailed(err error, id contract.TaskID) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("취소 신호 대기 실패: 저장소 오류가 발생했습니다 (task_id: %s)", id))
}
