package storage

import (
	"github.com/darkkaiser/task-server/internal/service/contract"
)

const (
	statusKeyPrefix = "status-"
	cancelKeyPrefix = "cancel-"

	// cancelToken 취소 요청 1회마다 취소 채널에 적재되는 값
	cancelToken = "cancel"
)

// keyspace 작업 ID로부터 저장소 키를 만듭니다.
type keyspace struct {
	prefix string
}

func (k keyspace) status(id contract.TaskID) string {
	return k.prefix + statusKeyPrefix + string(id)
}

func (k keyspace) cancel(id contract.TaskID) string {
	return k.prefix + cancelKeyPrefix + string(id)
}
