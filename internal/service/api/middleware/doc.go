// Package middleware 작업 서버 API에서 사용하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - RequestID: nanoid 기반 요청 ID 부여
//   - HTTPLogger: HTTP 요청/응답 로깅 (민감 정보 마스킹)
//   - RateLimit: IP 기반 요청 속도 제한
//   - DeprecatedEndpoint: 레거시 엔드포인트 경고 헤더 추가
//   - Logger: Echo 로거를 애플리케이션 로거로 연결
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.RequestID())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimit(20, 40))
package middleware
