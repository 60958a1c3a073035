package mocks

import (
	"context"

	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockTaskLifecycle는 contract.TaskLifecycle 인터페이스의 Mock 구현체입니다.
type MockTaskLifecycle struct {
	mock.Mock
}

var _ contract.TaskLifecycle = (*MockTaskLifecycle)(nil)

func (m *MockTaskLifecycle) StartTask(ctx context.Context) (contract.TaskID, error) {
	args := m.Called(ctx)
	return args.Get(0).(contract.TaskID), args.Error(1)
}

func (m *MockTaskLifecycle) Status(ctx context.Context, id contract.TaskID) (contract.TaskStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contract.TaskStatus), args.Error(1)
}

func (m *MockTaskLifecycle) Cancel(ctx context.Context, id contract.TaskID) (contract.TaskStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contract.TaskStatus), args.Error(1)
}

func (m *MockTaskLifecycle) Running() int {
	args := m.Called()
	return args.Int(0)
}

// MockHealthChecker는 contract.HealthChecker 인터페이스의 Mock 구현체입니다.
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health() error {
	args := m.Called()
	return args.Error(0)
}
