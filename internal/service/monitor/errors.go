package monitor

import (
	"fmt"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
)

var (
	// ErrNotChecked 아직 한 번도 상태를 점검하지 않았을 때 반환하는 에러입니다.
	ErrNotChecked = apperrors.New(apperrors.Unavailable, "저장소 상태를 아직 점검하지 않았습니다")
)

// NewErrInvalidCronSpec Cron 표현식이 올바르지 않아 점검 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidCronSpec(timeSpec string, cause error) error {
	return apperrors.Wrap(cause, apperrors.InvalidInput, fmt.Sprintf("점검 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", timeSpec))
}
