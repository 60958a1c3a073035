// Package handler v1 API의 작업 제어 HTTP 핸들러를 제공합니다.
//
// 요청에서 작업 ID를 추출해 TaskLifecycle을 호출하고, 결과를 JSON 응답으로 변환합니다.
// 서비스 계층 에러는 httputil.FromAppError로 상태 코드가 결정됩니다.
package handler

import (
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/contract"
)

// Handler 작업 시작, 상태 조회, 취소 요청을 처리하는 핸들러입니다.
type Handler struct {
	tasks contract.TaskLifecycle
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(tasks contract.TaskLifecycle) *Handler {
	if tasks == nil {
		panic(constants.PanicMsgTaskLifecycleRequired)
	}

	return &Handler{
		tasks: tasks,
	}
}
