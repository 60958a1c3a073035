package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/darkkaiser/task-server/internal/config"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis Redis 클라이언트를 생성하고 PING이 성공할 때까지 지수 백오프로 재시도합니다.
//
// 재시도는 시작 시점의 연결에만 적용되며, 이후의 저장소 연산은 재시도하지 않습니다.
// ConnectMaxElapsed가 0이면 1회만 시도합니다.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.Username,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	notify := func(err error, delay time.Duration) {
		applog.WithComponentAndFields(redisComponent, applog.Fields{
			"addr":  cfg.Addr,
			"delay": delay.String(),
			"error": err,
		}).Warn("Redis 연결 실패: 잠시 후 다시 시도합니다")
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(newConnectBackoff(cfg.ConnectMaxElapsed), ctx), notify); err != nil {
		_ = client.Close()
		return nil, NewErrConnectFailed(err, cfg.Addr)
	}

	applog.WithComponentAndFields(redisComponent, applog.Fields{
		"addr":               cfg.Addr,
		"db":                 cfg.DB,
		"pool_size":          cfg.PoolSize,
		"listener_pool_size": cfg.ListenerPoolSize,
	}).Info("Redis 연결 성공")

	return client, nil
}

// NewListenerClient 취소 신호 대기(BLPOP) 전용 Redis 클라이언트를 생성합니다.
//
// 연결 확인은 ConnectRedis에서 끝났으므로 별도로 PING을 보내지 않습니다. 연결은 처음 대기할 때 생성됩니다.
// 풀이 가득 차면 PoolTimeout만큼 기다린 뒤 실패하므로, 동시에 실행할 작업 수는 ListenerPoolSize 이하로 제한해야 합니다.
func NewListenerClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.Username,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.ListenerPoolSize,
		DialTimeout: cfg.DialTimeout,
	})
}

func newConnectBackoff(maxElapsed time.Duration) backoff.BackOff {
	if maxElapsed <= 0 {
		return &backoff.StopBackOff{}
	}

	b := backoff.NewExponentialBackOff()
	b.RandomizationFactor = 0.2
	b.InitialInterval = 100 * time.Millisecond
	b.Multiplier = 2
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxElapsed
	b.Reset()
	return b
}
