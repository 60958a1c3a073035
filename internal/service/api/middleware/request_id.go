package middleware

import (
	"github.com/darkkaiser/task-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestID 요청마다 nanoid 형식의 X-Request-ID를 부여하는 미들웨어를 반환합니다.
//
// 클라이언트가 X-Request-ID 헤더를 보낸 경우 해당 값을 그대로 사용합니다.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	})
}

func newRequestID() string {
	id, err := gonanoid.New(constants.RequestIDLength)
	if err != nil {
		// 난수 생성 실패 시 요청 처리를 막지 않고 빈 값으로 둡니다.
		return ""
	}
	return id
}
