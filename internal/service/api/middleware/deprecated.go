package middleware

import (
	"fmt"
	"strings"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// DeprecatedEndpoint deprecated 엔드포인트 응답에 경고 헤더를 추가하는 미들웨어를 반환합니다.
//
// 추가되는 헤더:
//   - Warning: 299 - "Deprecated API endpoint. Use {newEndpoint} instead."
//   - X-API-Deprecated: true
//   - X-API-Deprecated-Replacement: {newEndpoint}
//
//	e.GET("/start", h.StartTaskHandler, middleware.DeprecatedEndpoint("/api/v1/tasks"))
//
// Panics:
//   - newEndpoint가 빈 문자열이거나 '/'로 시작하지 않는 경우
func DeprecatedEndpoint(newEndpoint string) echo.MiddlewareFunc {
	if newEndpoint == "" {
		panic(constants.PanicMsgDeprecatedEndpointEmpty)
	}
	if !strings.HasPrefix(newEndpoint, "/") {
		panic(fmt.Sprintf(constants.PanicMsgDeprecatedEndpointInvalidPrefix, newEndpoint))
	}

	warningMessage := fmt.Sprintf("299 - \"Deprecated API endpoint. Use %s instead.\"", newEndpoint)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(constants.Warning, warningMessage)
			header.Set(constants.XAPIDeprecated, "true")
			header.Set(constants.XAPIDeprecatedReplacement, newEndpoint)

			applog.WithComponentAndFields(constants.ComponentMiddlewareDeprecated, applog.Fields{
				"deprecated_endpoint": c.Path(),
				"replacement":         newEndpoint,
				"method":              c.Request().Method,
				"remote_ip":           c.RealIP(),
				"user_agent":          c.Request().UserAgent(),
			}).Warn(constants.LogMsgDeprecatedEndpointUsed)

			return next(c)
		}
	}
}
