package mocks

import (
	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockTaskIDGenerator는 contract.TaskIDGenerator 인터페이스의 Mock 구현체입니다.
type MockTaskIDGenerator struct {
	mock.Mock
}

func (m *MockTaskIDGenerator) New() contract.TaskID {
	args := m.Called()
	return args.Get(0).(contract.TaskID)
}
