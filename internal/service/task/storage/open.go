package storage

import (
	"context"

	"github.com/darkkaiser/task-server/internal/config"
	"github.com/darkkaiser/task-server/internal/service/contract"
	applog "github.com/darkkaiser/task-server/pkg/log"
)

// Open 설정된 드라이버에 맞는 저장소를 생성합니다.
// redis 드라이버는 연결이 확인될 때까지 블로킹합니다.
func Open(ctx context.Context, cfg config.StoreConfig) (contract.TaskStore, error) {
	opts := NewOptions(cfg)

	switch cfg.Driver {
	case config.StoreDriverRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, NewListenerClient(cfg.Redis), opts), nil

	case config.StoreDriverMemory:
		applog.WithComponent("store.memory").Warn("메모리 저장소를 사용합니다. 작업 상태는 이 프로세스 안에서만 유지됩니다")
		return NewMemoryStore(opts), nil

	default:
		return nil, NewErrUnsupportedDriver(cfg.Driver)
	}
}
