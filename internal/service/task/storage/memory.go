package storage

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/task-server/internal/service/contract"
)

// MemoryStore 프로세스 내부 메모리 기반의 작업 저장소입니다.
//
// RedisStore와 동일한 의미를 가집니다. 취소 신호는 키별 카운터로 보존되어 대기자가 없을 때
// 적재된 신호도 이후의 WaitCancel에서 소비되며, 신호 1개는 정확히 1개의 WaitCancel만 깨웁니다.
// 다른 프로세스와 상태를 공유하지 않습니다.
type MemoryStore struct {
	keys keyspace
	opts Options

	// now 만료 시간 계산에 사용하는 현재 시각 함수 (테스트에서 교체)
	now func() time.Time

	mu       sync.Mutex
	statuses map[string]memoryEntry
	signals  map[string]*memorySignalQueue
	closed   bool
}

type memoryEntry struct {
	status    contract.TaskStatus
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// memorySignalQueue 하나의 취소 키에 적재된 신호 개수와 대기자 알림 채널입니다.
type memorySignalQueue struct {
	pending   int
	expiresAt time.Time

	// notify 신호가 적재될 때마다 닫히고 새 채널로 교체됩니다.
	notify chan struct{}
}

var _ contract.TaskStore = (*MemoryStore)(nil)

// NewMemoryStore 비어있는 메모리 저장소를 생성합니다.
func NewMemoryStore(opts Options) *MemoryStore {
	opts = opts.normalized()

	return &MemoryStore{
		keys:     keyspace{prefix: opts.KeyPrefix},
		opts:     opts,
		now:      time.Now,
		statuses: make(map[string]memoryEntry),
		signals:  make(map[string]*memorySignalQueue),
	}
}

func (s *MemoryStore) GetStatus(ctx context.Context, id contract.TaskID) (contract.TaskStatus, bool, error) {
	if err := ctx.Err(); err != nil {
		return contract.TaskStatusUnknown, false, NewErrStatusReadFailed(err, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return contract.TaskStatusUnknown, false, NewErrStatusReadFailed(ErrStoreClosed, id)
	}

	key := s.keys.status(id)
	entry, ok := s.statuses[key]
	if !ok {
		return contract.TaskStatusUnknown, false, nil
	}
	if entry.expired(s.now()) {
		delete(s.statuses, key)
		return contract.TaskStatusUnknown, false, nil
	}

	return entry.status, true, nil
}

func (s *MemoryStore) SetStatus(ctx context.Context, id contract.TaskID, status contract.TaskStatus) error {
	if err := ctx.Err(); err != nil {
		return NewErrStatusWriteFailed(err, id, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewErrStatusWriteFailed(ErrStoreClosed, id, status)
	}

	s.statuses[s.keys.status(id)] = memoryEntry{
		status:    status,
		expiresAt: s.deadline(s.opts.StatusTTL),
	}

	return nil
}

func (s *MemoryStore) PushCancel(ctx context.Context, id contract.TaskID) error {
	if err := ctx.Err(); err != nil {
		return NewErrCancelPushFailed(err, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewErrCancelPushFailed(ErrStoreClosed, id)
	}

	q := s.queueLocked(s.keys.cancel(id))
	q.pending++
	if s.opts.SignalTTL > 0 {
		q.expiresAt = s.deadline(s.opts.SignalTTL)
	}

	close(q.notify)
	q.notify = make(chan struct{})

	return nil
}

func (s *MemoryStore) WaitCancel(ctx context.Context, id contract.TaskID) error {
	key := s.keys.cancel(id)

	for {
		// 이미 취소된 대기자가 적재된 신호를 가져가지 않도록 소비 전에 확인합니다.
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return NewErrCancelWaitFailed(ErrStoreClosed, id)
		}

		q := s.queueLocked(key)
		if q.pending > 0 {
			q.pending--
			if q.pending == 0 {
				q.expiresAt = time.Time{}
			}
			s.mu.Unlock()
			return nil
		}
		notify := q.notify
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-notify:
		}
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return NewErrPingFailed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewErrPingFailed(ErrStoreClosed)
	}
	return nil
}

// Close 저장소를 닫고 대기 중인 WaitCancel을 모두 깨웁니다. 여러 번 호출해도 안전합니다.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, q := range s.signals {
		close(q.notify)
	}
	s.signals = make(map[string]*memorySignalQueue)

	return nil
}

// queueLocked 키에 해당하는 신호 큐를 반환하며, 없거나 만료되었으면 새로 만듭니다. s.mu를 보유한 상태에서 호출해야 합니다.
func (s *MemoryStore) queueLocked(key string) *memorySignalQueue {
	q, ok := s.signals[key]
	if !ok {
		q = &memorySignalQueue{notify: make(chan struct{})}
		s.signals[key] = q
		return q
	}

	if q.pending > 0 && !q.expiresAt.IsZero() && !s.now().Before(q.expiresAt) {
		q.pending = 0
		q.expiresAt = time.Time{}
	}
	return q
}

func (s *MemoryStore) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}
