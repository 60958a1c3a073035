package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/task-server/internal/service/api/constants"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 최대 고유 IP(Rate Limiter 인스턴스) 수입니다.
	// 다수의 IP에서 요청이 유입되어도 추적 맵의 크기는 이 값을 넘지 않습니다.
	// 임계값에 도달하면 Go Map의 무작위 순회 특성을 이용해 임의의 항목 하나를 축출한 뒤 새 IP를 등록합니다.
	maxIPRateLimiters = 10000

	// retryAfter RFC 7231, Section 7.1.3에 정의된 HTTP 헤더 필드입니다.
	// 요청이 제한되었음을 알리고 클라이언트가 언제 다시 요청해야 하는지를 지시합니다.
	retryAfter = "Retry-After"

	// retryAfterSeconds 제한 초과 시 클라이언트에게 제안하는 재시도 대기 시간(초)입니다.
	// 고정 값(Fixed Backoff)이며, 1초 동안 버킷에는 requestsPerSecond개의 토큰이 다시 채워집니다.
	retryAfterSeconds = "1"
)

// ipRateLimiter IP 주소별 Rate Limiter를 관리하는 구조체입니다.
//
// Token Bucket 알고리즘으로 IP마다 독립적인 요청 제한을 적용합니다.
//
// 동시성 안전성:
//   - sync.RWMutex로 여러 고루틴에서 안전하게 접근 가능
//   - 조회는 RLock, 생성과 축출은 Lock으로 처리
//
// 메모리 관리:
//   - 최대 maxIPRateLimiters개의 IP 추적
//   - 한도 도달 시 맵에서 임의의 항목 하나를 제거
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit // 초당 허용 요청 수
	burst    int        // 버스트 허용량
}

// newIPRateLimiter 새로운 IP 기반 Rate Limiter를 생성합니다.
//
// Parameters:
//   - requestsPerSecond: 초당 허용 요청 수 (예: 20)
//   - burst: 버스트 허용량 (예: 40)
func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter 특정 IP의 Limiter를 반환하고, 없으면 새로 생성합니다.
//
// 이미 등록된 IP는 읽기 락만으로 반환하며, 생성은 Double-Checked Locking으로 1회만 일어납니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	// 1. 읽기 락으로 먼저 확인
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	// 2. 쓰기 락으로 생성
	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check: 다른 고루틴이 이미 생성했을 수 있음
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	// 3. 최대 개수에 도달하면 임의의 항목 하나를 축출
	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	// 4. 새 Limiter 생성 및 저장
	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// size 현재 추적 중인 IP의 수를 반환합니다.
func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.limiters)
}

// RateLimit IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// Token Bucket 알고리즘으로 클라이언트 IP(c.RealIP())별 요청 속도를 제한합니다.
// 제한 초과 시 HTTP 429 (Too Many Requests)와 Retry-After 헤더를 반환합니다.
//
// Parameters:
//   - requestsPerSecond: 초당 허용 요청 수 (양수, 예: 20)
//   - burst: 버스트 허용량 (양수, 예: 40)
//
// Token Bucket 알고리즘:
//   - Rate: 초당 토큰 생성 속도 (requestsPerSecond)
//   - Burst: 버킷 크기 (burst), 최대 저장 가능한 토큰 수
//   - 요청마다 토큰 1개 소비, 부족 시 요청 거부
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.RateLimit(20, 40)) // 초당 20 요청, 버스트 40
//
// 주의사항:
//   - 상태는 프로세스 메모리에만 유지 (서버 재시작 시 초기화)
//   - 같은 Redis를 공유하는 다중 인스턴스 환경에서도 제한은 인스턴스별로 독립 적용
//
// Panics:
//   - requestsPerSecond 또는 burst가 0 이하인 경우
func RateLimit(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. 클라이언트 IP 추출
			ip := c.RealIP()

			// 2. IP별 Limiter로 토큰 소비 시도
			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				// Retry-After 헤더 설정 (1초 후 재시도 권장)
				c.Response().Header().Set(retryAfter, retryAfterSeconds)

				return ErrRateLimitExceeded
			}

			// 3. 다음 핸들러 실행
			return next(c)
		}
	}
}
