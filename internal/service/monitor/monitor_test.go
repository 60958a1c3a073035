package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/darkkaiser/task-server/internal/config"
	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/internal/service/contract/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain runs tests and checks for goroutine leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHealthConfig(timeSpec string) config.HealthConfig {
	return config.HealthConfig{
		TimeSpec:    timeSpec,
		PingTimeout: time.Second,
	}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "Pinger는 필수입니다", func() {
		NewService(newTestHealthConfig("@every 30s"), nil)
	})
}

func TestService_Check(t *testing.T) {
	t.Parallel()

	store := &mocks.MockTaskStore{}
	store.On("Ping", mock.Anything).Return(nil).Once()
	store.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	store.On("Ping", mock.Anything).Return(nil).Once()

	s := NewService(newTestHealthConfig("@every 30s"), store)

	_, checked := s.Report()
	assert.False(t, checked)
	assert.ErrorIs(t, s.Health(), ErrNotChecked)

	report := s.Check(context.Background())
	assert.True(t, report.Healthy)
	assert.NoError(t, s.Health())
	assert.False(t, report.CheckedAt.IsZero())

	report = s.Check(context.Background())
	assert.False(t, report.Healthy)
	assert.EqualError(t, s.Health(), "connection refused")

	report = s.Check(context.Background())
	assert.True(t, report.Healthy)
	assert.NoError(t, s.Health(), "복구 후에는 정상으로 보고되어야 합니다")

	store.AssertExpectations(t)
}

func TestService_Check_PingTimeout(t *testing.T) {
	t.Parallel()

	store := &mocks.MockTaskStore{}
	store.On("Ping", mock.Anything).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}).Return(context.DeadlineExceeded)

	cfg := newTestHealthConfig("@every 30s")
	cfg.PingTimeout = 20 * time.Millisecond
	s := NewService(cfg, store)

	start := time.Now()
	report := s.Check(context.Background())
	assert.False(t, report.Healthy)
	assert.Less(t, time.Since(start), time.Second)
	assert.GreaterOrEqual(t, report.Latency, 20*time.Millisecond)
}

func TestService_Lifecycle(t *testing.T) {
	t.Parallel()

	t.Run("시작 시 즉시 점검하고 스케줄에 따라 반복", func(t *testing.T) {
		t.Parallel()

		var pings atomic.Int32
		store := &mocks.MockTaskStore{}
		store.On("Ping", mock.Anything).Run(func(mock.Arguments) { pings.Add(1) }).Return(nil)

		s := NewService(newTestHealthConfig("@every 1s"), store)

		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		wg.Add(1)
		require.NoError(t, s.Start(ctx, wg))

		assert.NoError(t, s.Health())
		assert.Equal(t, int32(1), pings.Load())

		require.Eventually(t, func() bool {
			return pings.Load() >= 2
		}, 3*time.Second, 20*time.Millisecond)

		cancel()
		wg.Wait()

		s.runningMu.Lock()
		assert.False(t, s.running)
		s.runningMu.Unlock()
	})

	t.Run("잘못된 Cron 표현식은 시작 실패", func(t *testing.T) {
		t.Parallel()

		store := &mocks.MockTaskStore{}
		s := NewService(newTestHealthConfig("every 30s"), store)

		wg := &sync.WaitGroup{}
		wg.Add(1)
		err := s.Start(context.Background(), wg)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

		wg.Wait()
		store.AssertNotCalled(t, "Ping", mock.Anything)
	})

	t.Run("중복 시작은 무시됨", func(t *testing.T) {
		t.Parallel()

		store := &mocks.MockTaskStore{}
		store.On("Ping", mock.Anything).Return(nil)

		s := NewService(newTestHealthConfig("@every 30s"), store)

		ctx, cancel := context.WithCancel(context.Background())
		wg := &sync.WaitGroup{}
		wg.Add(2)
		require.NoError(t, s.Start(ctx, wg))
		require.NoError(t, s.Start(ctx, wg))

		cancel()
		wg.Wait()
	})
}
