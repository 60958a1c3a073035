// Package service 프로세스가 구동하는 서비스들의 공통 생명주기 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 백그라운드에서 실행되는 서비스입니다.
//
// Start는 즉시 반환되어야 하며, serviceStopCtx가 취소되면 정리 작업을 마친 뒤
// serviceStopWG.Done()을 정확히 한 번 호출해야 합니다. Start가 에러를 반환하는 경우에도 마찬가지입니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
