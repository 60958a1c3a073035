package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 하나의 로그 이벤트를 여러 Writer로 분배합니다.
//
// 라우팅 규칙:
//   - consoleWriter: 모든 레벨
//   - criticalWriter: ERROR / FATAL / PANIC (메인 파일에도 함께 기록)
//   - verboseWriter: DEBUG / TRACE (설정된 경우 메인 파일 대신 기록)
//   - mainWriter: 그 외 모든 레벨, verboseWriter가 없으면 DEBUG / TRACE 포함
//
// nil인 Writer는 건너뜁니다. 한 Writer의 쓰기 실패는 나머지 Writer의 기록을 막지 않으며,
// 실패 내용은 표준 에러로 출력하고 첫 번째 에러만 반환합니다.
type hook struct {
	mainWriter     io.Writer // 운영 로그 (INFO 이상, 작업 경합 결과와 요청 로그 포함)
	criticalWriter io.Writer // 장애 분석용 에러 로그 (ERROR 이상)
	verboseWriter  io.Writer // 디버깅용 상세 로그 (DEBUG / TRACE)
	consoleWriter  io.Writer // 표준 출력

	formatter Formatter

	mu sync.RWMutex // Fire(RLock)와 Close(Lock) 간의 동시성 제어

	closed bool // true이면 모든 Fire 요청을 무시
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 1회 포맷팅한 후 라우팅 규칙에 따라 각 Writer에 기록합니다.
func (h *hook) Fire(entry *Entry) error {
	// 동시 로깅은 허용하고, 기록 중에 Hook이 닫히지 않도록 읽기 락을 유지합니다.
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 포맷팅은 한 번만 수행하고 모든 Writer가 같은 결과를 공유합니다.
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 쓰기 실패: %v\n", name, err)
		}
	}

	// 0. Console: 레벨과 무관하게 모두 출력
	write(h.consoleWriter, "Console")

	// 1. Critical (Error 이상): 실패해도 메인 로그 기록은 이어서 수행합니다.
	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}

	// 2. Verbose (Debug/Trace): 설정된 경우 메인 로그에는 남기지 않고 여기서 종료합니다.
	if entry.Level >= DebugLevel && h.verboseWriter != nil {
		write(h.verboseWriter, "Verbose")
		return firstErr
	}

	// 3. Main: 에러 로그도 중복 기록하여 앞뒤 문맥을 함께 보존합니다.
	write(h.mainWriter, "Main")

	return firstErr
}

// Close 이후의 모든 Fire 요청을 무시하도록 Hook을 닫습니다.
//
// 쓰기 락을 획득하므로 진행 중인 Fire가 모두 끝난 뒤에 반환되며, 이후 Writer를 닫아도 안전합니다.
func (h *hook) Close() {
	// 진행 중인 Fire(RLock)가 모두 끝날 때까지 대기
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
