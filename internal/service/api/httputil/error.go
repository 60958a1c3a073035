package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// echo.HTTPError가 아닌 에러는 FromAppError로 ErrorType에 맞는 상태 코드를 결정합니다.
func ErrorHandler(err error, c echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = FromAppError(err)
	}

	code := he.Code
	message := constants.ErrMsgInternalServer
	switch m := he.Message.(type) {
	case string:
		message = m
	case response.ErrorResponse:
		message = m.Message
	}

	// 라우팅 실패로 발생한 Echo 기본 404 메시지는 한국어 메시지로 통일
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if he.Internal != nil {
		fields["cause"] = he.Internal.Error()
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(code)
	} else {
		respErr = c.JSON(code, response.ErrorResponse{
			ResultCode: code,
			Message:    message,
		})
	}

	if respErr != nil {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
			"path":  c.Request().URL.Path,
			"error": respErr,
		}).Error(constants.LogMsgHTTPErrorResponseFailed)
	}
}
