package handler

import (
	"net/http"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/model/response"
	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// StartTaskHandler godoc
// @Summary 작업 시작
// @Description 새 작업 ID를 발급하고 작업을 백그라운드에서 시작합니다.
// @Description 작업의 완료를 기다리지 않고 즉시 반환하며, 진행 상황은 상태 조회 API로 확인합니다.
// @Tags Task
// @Produce json
// @Success 202 {object} response.TaskStartResponse "작업 시작됨"
// @Failure 503 {object} response.ErrorResponse "서비스 중지됨 또는 동시 실행 한도 초과"
// @Router /api/v1/tasks [post]
func (h *Handler) StartTaskHandler(c echo.Context) error {
	return h.startTask(c, http.StatusAccepted)
}

// LegacyStartTaskHandler godoc
// @Summary 작업 시작 (deprecated)
// @Description POST /api/v1/tasks를 사용하세요.
// @Tags Task (Legacy)
// @Produce json
// @Success 200 {object} response.TaskStartResponse "작업 시작됨"
// @Failure 503 {object} response.ErrorResponse "서비스 중지됨 또는 동시 실행 한도 초과"
// @Deprecated
// @Router /start [get]
func (h *Handler) LegacyStartTaskHandler(c echo.Context) error {
	return h.startTask(c, http.StatusOK)
}

func (h *Handler) startTask(c echo.Context, successCode int) error {
	id, err := h.tasks.StartTask(c.Request().Context())
	if err != nil {
		return toHTTPError(c, "start", "", err)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"task_id":   id,
		"remote_ip": c.RealIP(),
	}).Info(constants.LogMsgTaskStarted)

	return c.JSON(successCode, response.TaskStartResponse{
		TaskID: id.String(),
	})
}

// GetTaskStatusHandler godoc
// @Summary 작업 상태 조회
// @Description 작업의 현재 상태를 반환합니다. 기록이 없는 작업은 unknown입니다.
// @Tags Task
// @Produce json
// @Param task_id path string true "작업 ID"
// @Success 200 {object} response.TaskResponse "작업 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 작업 ID"
// @Failure 503 {object} response.ErrorResponse "상태 저장소 사용 불가"
// @Router /api/v1/tasks/{task_id} [get]
func (h *Handler) GetTaskStatusHandler(c echo.Context) error {
	id := contract.TaskID(c.Param(constants.ParamTaskID))

	status, err := h.tasks.Status(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, "status", id.String(), err)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"task_id": id,
		"status":  status,
	}).Debug(constants.LogMsgTaskStatus)

	return c.JSON(http.StatusOK, response.TaskResponse{
		TaskID: id.String(),
		Status: status.String(),
	})
}

// CancelTaskHandler godoc
// @Summary 작업 취소
// @Description 작업이 started 상태일 때만 취소 신호를 보냅니다.
// @Description 그 외 상태에서는 아무것도 하지 않으며, 요청 직후의 상태를 반환합니다.
// @Description 취소는 비동기로 반영되므로 반환된 상태가 아직 started일 수 있습니다.
// @Tags Task
// @Produce json
// @Param task_id path string true "작업 ID"
// @Success 200 {object} response.TaskResponse "요청 직후 작업 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 작업 ID"
// @Failure 503 {object} response.ErrorResponse "상태 저장소 사용 불가"
// @Router /api/v1/tasks/{task_id}/cancel [post]
func (h *Handler) CancelTaskHandler(c echo.Context) error {
	id := contract.TaskID(c.Param(constants.ParamTaskID))

	status, err := h.tasks.Cancel(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, "cancel", id.String(), err)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"task_id":   id,
		"status":    status,
		"remote_ip": c.RealIP(),
	}).Info(constants.LogMsgTaskCancelled)

	return c.JSON(http.StatusOK, response.TaskResponse{
		TaskID: id.String(),
		Status: status.String(),
	})
}
