package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/darkkaiser/task-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// FromAppError 서비스 계층 에러를 ErrorType에 맞는 HTTP 에러로 변환합니다.
//
//   - InvalidInput: 400, 에러 메시지를 그대로 노출
//   - Unavailable: 503
//   - 그 외: 500
//
// 5xx 응답에는 내부 메시지를 노출하지 않으며, 원인 에러는 Internal 필드에 보관되어 로그에 기록됩니다.
func FromAppError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var he *echo.HTTPError
	switch apperrors.TypeOf(err) {
	case apperrors.InvalidInput:
		message := constants.ErrMsgBadRequest

		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			message = appErr.Message()
		}
		he = newHTTPError(http.StatusBadRequest, message)

	case apperrors.Unavailable:
		he = newHTTPError(http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable)

	default:
		he = newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer)
	}

	return he.SetInternal(err)
}
