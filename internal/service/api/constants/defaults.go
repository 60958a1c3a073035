package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수 기본값
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 순간 최대 허용 요청 수 기본값
	DefaultRateLimitBurst = 40

	// DefaultShutdownTimeout HTTP 서버 Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// RequestIDLength 요청 ID(nanoid) 길이
	RequestIDLength = 21
)
