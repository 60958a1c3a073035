package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/darkkaiser/task-server/internal/service/task/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitCoordinator(t *testing.T, c *Coordinator) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), eventuallyWait)
	defer cancel()
	require.NoError(t, c.Wait(ctx), "모든 활동 고루틴이 종료되어야 합니다")
}

func TestCoordinator_Run(t *testing.T) {
	t.Parallel()

	t.Run("작업이 먼저 완료되면 finished, 이후 신호는 소비되지 않음", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		c := NewCoordinator(store, TimedWork{Duration: 50 * time.Millisecond}, testWriteTimeout)

		outcome := c.Run(context.Background(), "t1")
		waitCoordinator(t, c)

		assert.Equal(t, OutcomeWorkCompleted, outcome)
		assert.Equal(t, contract.TaskStatusFinished, statusOf(t, store, "t1"))

		require.NoError(t, store.PushCancel(context.Background(), "t1"))
		assert.Equal(t, contract.TaskStatusFinished, statusOf(t, store, "t1"), "종료 상태는 바뀌지 않아야 합니다")
		assertPendingSignal(t, store, "t1")
	})

	t.Run("취소 신호가 먼저 도착하면 cancelled", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		c := NewCoordinator(store, blockingWork(), testWriteTimeout)

		outcomeC := make(chan Outcome, 1)
		go func() { outcomeC <- c.Run(context.Background(), "t1") }()

		requireEventuallyStatus(t, store, "t1", contract.TaskStatusStarted)
		require.NoError(t, store.PushCancel(context.Background(), "t1"))

		assert.Equal(t, OutcomeCancelSignalled, <-outcomeC)
		requireEventuallyStatus(t, store, "t1", contract.TaskStatusCancelled)
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusCancelled, statusOf(t, store, "t1"))
		assertNoPendingSignal(t, store, "t1")
	})

	t.Run("시작 전에 적재된 신호로도 cancelled", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		require.NoError(t, store.PushCancel(context.Background(), "t1"))

		c := NewCoordinator(store, blockingWork(), testWriteTimeout)

		assert.Equal(t, OutcomeCancelSignalled, c.Run(context.Background(), "t1"))
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusCancelled, statusOf(t, store, "t1"))
	})

	t.Run("작업 에러는 failed", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		work := WorkFunc(func(ctx context.Context, _ contract.TaskID, rec Recorder) error {
			if err := rec.Record(ctx, contract.TaskStatusStarted); err != nil {
				return err
			}
			return errWorkBroken
		})
		c := NewCoordinator(store, work, testWriteTimeout)

		assert.Equal(t, OutcomeWorkFailed, c.Run(context.Background(), "t1"))
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusFailed, statusOf(t, store, "t1"))
	})

	t.Run("작업 패닉은 failed", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		work := WorkFunc(func(context.Context, contract.TaskID, Recorder) error {
			panic("boom")
		})
		c := NewCoordinator(store, work, testWriteTimeout)

		assert.Equal(t, OutcomeWorkFailed, c.Run(context.Background(), "t1"))
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusFailed, statusOf(t, store, "t1"))
	})

	t.Run("상위 ctx 취소 시 cancelled", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		c := NewCoordinator(store, blockingWork(), testWriteTimeout)

		ctx, cancel := context.WithCancel(context.Background())
		outcomeC := make(chan Outcome, 1)
		go func() { outcomeC <- c.Run(ctx, "t1") }()

		requireEventuallyStatus(t, store, "t1", contract.TaskStatusStarted)
		cancel()

		assert.Equal(t, OutcomeAborted, <-outcomeC)
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusCancelled, statusOf(t, store, "t1"))
	})

	t.Run("취소 대기 오류는 완료로 간주되어 작업이 cancelled", func(t *testing.T) {
		t.Parallel()

		store := &failingListenerStore{
			MemoryStore: newTestStore(t),
			err:         apperrors.New(apperrors.Unavailable, "연결 끊김"),
		}
		c := NewCoordinator(store, blockingWork(), testWriteTimeout)

		assert.Equal(t, OutcomeListenerFailed, c.Run(context.Background(), "t1"))
		waitCoordinator(t, c)

		assert.Equal(t, contract.TaskStatusCancelled, statusOf(t, store, "t1"))
	})
}

func TestCoordinator_Go(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewCoordinator(store, blockingWork(), testWriteTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ids := []contract.TaskID{"t1", "t2", "t3"}
	for _, id := range ids {
		c.Go(ctx, id)
	}

	require.Eventually(t, func() bool { return c.Running() == len(ids) }, eventuallyWait, eventuallyTick)
	for _, id := range ids {
		requireEventuallyStatus(t, store, id, contract.TaskStatusStarted)
	}

	// 한 작업의 취소가 다른 작업에 영향을 주지 않아야 합니다.
	require.NoError(t, store.PushCancel(context.Background(), "t2"))
	requireEventuallyStatus(t, store, "t2", contract.TaskStatusCancelled)
	require.Eventually(t, func() bool { return c.Running() == 2 }, eventuallyWait, eventuallyTick)
	assert.Equal(t, contract.TaskStatusStarted, statusOf(t, store, "t1"))
	assert.Equal(t, contract.TaskStatusStarted, statusOf(t, store, "t3"))

	cancel()
	waitCoordinator(t, c)

	assert.Zero(t, c.Running())
	for _, id := range ids {
		assert.Equal(t, contract.TaskStatusCancelled, statusOf(t, store, id))
	}
}

// lingeringListenerStore ctx가 취소된 후에도 hold가 닫힐 때까지 취소 신호 대기를 반환하지 않는 저장소입니다.
type lingeringListenerStore struct {
	*storage.MemoryStore
	hold chan struct{}
}

func (s *lingeringListenerStore) WaitCancel(ctx context.Context, _ contract.TaskID) error {
	<-ctx.Done()
	<-s.hold
	return ctx.Err()
}

func TestCoordinator_GoWithRelease(t *testing.T) {
	t.Parallel()

	store := &lingeringListenerStore{MemoryStore: newTestStore(t), hold: make(chan struct{})}
	c := NewCoordinator(store, TimedWork{Duration: 20 * time.Millisecond}, testWriteTimeout)

	var released atomic.Int32
	c.GoWithRelease(context.Background(), "t1", func() { released.Add(1) })

	requireEventuallyStatus(t, store, "t1", contract.TaskStatusFinished)
	require.Eventually(t, func() bool { return c.Running() == 0 }, eventuallyWait, eventuallyTick)

	// 진 쪽(취소 신호 대기)이 아직 종료되지 않았으므로 반납되지 않아야 합니다.
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, released.Load())

	close(store.hold)
	waitCoordinator(t, c)

	assert.Equal(t, int32(1), released.Load(), "release는 정확히 1회 호출되어야 합니다")
}

func TestCoordinator_Wait_Timeout(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	release := make(chan struct{})
	work := WorkFunc(func(context.Context, contract.TaskID, Recorder) error {
		<-release
		return nil
	})
	c := NewCoordinator(store, work, testWriteTimeout)
	c.Go(context.Background(), "t1")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.DeadlineExceeded)

	close(release)
	waitCoordinator(t, c)
}

func TestNewCoordinator_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewCoordinator(nil, blockingWork(), time.Second) })
	assert.Panics(t, func() { NewCoordinator(newTestStore(t), nil, time.Second) })
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "work_completed", OutcomeWorkCompleted.String())
	assert.Equal(t, "work_failed", OutcomeWorkFailed.String())
	assert.Equal(t, "cancel_signalled", OutcomeCancelSignalled.String())
	assert.Equal(t, "listener_failed", OutcomeListenerFailed.String())
	assert.Equal(t, "aborted", OutcomeAborted.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
