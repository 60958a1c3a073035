package contract

import (
	"fmt"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
)

var (
	// ErrTaskIDRequired 작업 ID가 비어있을 때 반환하는 에러입니다.
	ErrTaskIDRequired = apperrors.New(apperrors.InvalidInput, "작업 ID는 비워둘 수 없습니다")

	// ErrTaskIDTooLong 작업 ID가 허용 길이를 초과할 때 반환하는 에러입니다.
	ErrTaskIDTooLong = apperrors.New(apperrors.InvalidInput, fmt.Sprintf("작업 ID는 %d자를 초과할 수 없습니다", maxTaskIDLength))
)
