package handler

import (
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// toHTTPError 서비스 계층 에러를 기록하고 HTTP 에러로 변환합니다.
func toHTTPError(c echo.Context, operation string, taskID string, err error) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"operation": operation,
		"task_id":   taskID,
		"path":      c.Path(),
		"error":     err,
	}).Debug(constants.LogMsgTaskRequestFail)

	return httputil.FromAppError(err)
}
