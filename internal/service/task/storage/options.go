package storage

import (
	"time"

	"github.com/darkkaiser/task-server/internal/config"
)

// minCancelPollInterval Redis BLPOP 타임아웃의 최소 단위입니다. (1초 미만은 1초로 전송됨)
const minCancelPollInterval = time.Second

// Options 백엔드 공통 옵션입니다.
type Options struct {
	// KeyPrefix 모든 키 앞에 붙는 접두사 (기본값: 없음)
	KeyPrefix string

	// StatusTTL 상태 키의 만료 시간 (0: 만료 없음)
	StatusTTL time.Duration

	// SignalTTL 취소 신호 키의 만료 시간 (0: 만료 없음)
	SignalTTL time.Duration

	// CancelPollInterval 취소 대기 1회의 최대 블로킹 시간
	CancelPollInterval time.Duration
}

// NewOptions 저장소 설정으로부터 Options를 생성합니다.
func NewOptions(cfg config.StoreConfig) Options {
	return Options{
		KeyPrefix:          cfg.KeyPrefix,
		StatusTTL:          cfg.StatusTTL,
		SignalTTL:          cfg.SignalTTL,
		CancelPollInterval: cfg.CancelPollInterval,
	}
}

func (o Options) normalized() Options {
	if o.CancelPollInterval < minCancelPollInterval {
		o.CancelPollInterval = minCancelPollInterval
	}
	if o.StatusTTL < 0 {
		o.StatusTTL = 0
	}
	if o.SignalTTL < 0 {
		o.SignalTTL = 0
	}
	return o
}
