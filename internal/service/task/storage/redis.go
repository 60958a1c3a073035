package storage

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/redis/go-redis/v9"
)

const redisComponent = "store.redis"

// RedisStore Redis 기반의 작업 저장소입니다.
//
// 상태는 GET/SET, 취소 신호는 LPUSH/BLPOP으로 다룹니다. BLPOP은 CancelPollInterval 단위로
// 끊어서 반복 호출하므로 대기 중인 ctx가 취소되면 최대 1회의 대기 시간 안에 반환되고 연결이 풀로 돌아갑니다.
//
// 연결은 두 풀로 나뉩니다.
//   - client: GET/SET/LPUSH/PING 등 짧게 끝나는 명령
//   - listener: BLPOP 전용. 대기 중인 작업마다 연결 1개를 계속 점유합니다.
//
// 대기 중인 작업이 client 풀을 고갈시키면 상태 기록과 API 요청이 함께 실패하므로 두 풀을 분리합니다.
type RedisStore struct {
	client   redis.UniversalClient
	listener redis.UniversalClient
	keys     keyspace
	opts     Options

	closed atomic.Bool
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.TaskStore = (*RedisStore)(nil)

// NewRedisStore 이미 연결된 Redis 클라이언트로 저장소를 생성합니다. 클라이언트의 소유권은 저장소로 넘어갑니다.
//
// listener는 BLPOP 전용 클라이언트입니다. nil이면 client를 함께 사용하며,
// 이 경우 동시에 대기 중인 작업 수가 client의 풀 크기에 직접 영향을 줍니다.
func NewRedisStore(client, listener redis.UniversalClient, opts Options) *RedisStore {
	opts = opts.normalized()

	if listener == nil {
		listener = client
	}

	return &RedisStore{
		client:   client,
		listener: listener,
		keys:     keyspace{prefix: opts.KeyPrefix},
		opts:     opts,
	}
}

func (s *RedisStore) GetStatus(ctx context.Context, id contract.TaskID) (contract.TaskStatus, bool, error) {
	val, err := s.client.Get(ctx, s.keys.status(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return contract.TaskStatusUnknown, false, nil
		}
		return contract.TaskStatusUnknown, false, NewErrStatusReadFailed(err, id)
	}

	return contract.TaskStatus(val), true, nil
}

func (s *RedisStore) SetStatus(ctx context.Context, id contract.TaskID, status contract.TaskStatus) error {
	// TTL 0은 만료 없음으로 기록됩니다.
	if err := s.client.Set(ctx, s.keys.status(id), string(status), s.opts.StatusTTL).Err(); err != nil {
		return NewErrStatusWriteFailed(err, id, status)
	}
	return nil
}

func (s *RedisStore) PushCancel(ctx context.Context, id contract.TaskID) error {
	key := s.keys.cancel(id)

	var err error
	if s.opts.SignalTTL > 0 {
		_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LPush(ctx, key, cancelToken)
			pipe.Expire(ctx, key, s.opts.SignalTTL)
			return nil
		})
	} else {
		err = s.client.LPush(ctx, key, cancelToken).Err()
	}
	if err != nil {
		return NewErrCancelPushFailed(err, id)
	}

	return nil
}

func (s *RedisStore) WaitCancel(ctx context.Context, id contract.TaskID) error {
	key := s.keys.cancel(id)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := s.listener.BLPop(ctx, s.opts.CancelPollInterval, key).Result()
		if err == nil {
			return nil
		}

		// 대기 시간 내에 신호가 없었으면 ctx를 다시 확인한 후 대기를 이어갑니다.
		if errors.Is(err, redis.Nil) {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return NewErrCancelWaitFailed(err, id)
	}
}

// Ping 두 연결 풀이 모두 응답하는지 확인합니다.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return NewErrPingFailed(err)
	}
	if s.listener != s.client {
		if err := s.listener.Ping(ctx).Err(); err != nil {
			return NewErrPingFailed(err)
		}
	}
	return nil
}

// Close 클라이언트 연결을 닫습니다. 여러 번 호출해도 안전합니다.
func (s *RedisStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	applog.WithComponent(redisComponent).Info("Redis 저장소 연결을 종료합니다")

	var listenerErr error
	if s.listener != s.client {
		listenerErr = s.listener.Close()
	}

	return errors.Join(s.client.Close(), listenerErr)
}
