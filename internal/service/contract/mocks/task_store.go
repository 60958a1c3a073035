package mocks

import (
	"context"

	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore는 contract.TaskStore 인터페이스의 Mock 구현체입니다.
type MockTaskStore struct {
	mock.Mock
}

var _ contract.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) GetStatus(ctx context.Context, id contract.TaskID) (contract.TaskStatus, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contract.TaskStatus), args.Bool(1), args.Error(2)
}

func (m *MockTaskStore) SetStatus(ctx context.Context, id contract.TaskID, status contract.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskStore) PushCancel(ctx context.Context, id contract.TaskID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WaitCancel Mock 메서드입니다. 반환값이 설정되지 않은 경우 ctx가 취소될 때까지 블로킹합니다.
func (m *MockTaskStore) WaitCancel(ctx context.Context, id contract.TaskID) error {
	args := m.Called(ctx, id)
	if err := args.Error(0); err != nil {
		return err
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *MockTaskStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
