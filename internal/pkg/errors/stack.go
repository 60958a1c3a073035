package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip 스택 수집 시 건너뛸 프레임 수입니다.
//
// runtime.Callers가 반환하는 스택은 가장 안쪽 호출부터 쌓입니다.
// 아래 3단계를 건너뛰어야 에러를 생성한 호출 지점(New/Wrap을 호출한 코드)이 0번째 프레임이 됩니다.
//
// 1. runtime.Callers              (스택 수집 함수)
// 2. captureStack                 (내부 유틸리티 함수)
// 3. New/Newf/Wrap/Wrapf          (공개 에러 생성 함수)
//
// 공개 생성 함수가 다른 공개 함수를 거쳐 captureStack을 호출하도록 바꾸면 이 값도 함께 조정해야 합니다.
const defaultCallerSkip = 3

// maxStackFrames 에러 하나에 기록하는 최대 프레임 수
//
// %+v 출력(Format)에는 수집된 프레임이 모두 포함됩니다.
const maxStackFrames = 5

// StackFrame 단일 함수 호출 프레임의 실행 위치 정보입니다.
type StackFrame struct {
	File     string // 파일 이름 (디렉토리 제외)
	Line     int    // 줄 번호
	Function string // 패키지 경로를 포함한 함수 이름
}

// captureStack 현재 실행 위치의 스택 정보를 최대 maxStackFrames단계까지 수집하여 반환합니다.
// 수집된 프레임이 없으면 nil을 반환합니다.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
