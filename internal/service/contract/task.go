// Package contract 서비스 간에 공유되는 작업 도메인 타입과 인터페이스를 정의합니다.
package contract

// maxTaskIDLength 외부에서 전달되는 작업 ID의 최대 길이
const maxTaskIDLength = 128

// TaskID 작업 실행 1회를 식별하는 불투명한 고유 식별자입니다.
// 저장소 키(status-<id>, cancel-<id>)의 접미사로 사용됩니다.
type TaskID string

func (id TaskID) String() string {
	return string(id)
}

// IsEmpty ID가 비어있는지 여부를 반환합니다.
func (id TaskID) IsEmpty() bool {
	return len(id) == 0
}

// Validate 외부 입력으로 전달된 작업 ID가 저장소 키로 사용 가능한지 검증합니다.
// 존재 여부와 문자 구성은 검사하지 않습니다. 발급된 적 없는 ID(공백 포함 등)는 상태 조회 시 unknown으로 응답합니다.
func (id TaskID) Validate() error {
	if id.IsEmpty() {
		return ErrTaskIDRequired
	}
	if len(id) > maxTaskIDLength {
		return ErrTaskIDTooLong
	}
	return nil
}

// TaskStatus 작업의 생명주기 상태입니다.
//
// 상태 전이: unknown -> started -> finished | cancelled | failed
// 종료 상태(finished, cancelled, failed)에 도달한 작업은 더 이상 상태가 바뀌지 않습니다.
type TaskStatus string

const (
	// TaskStatusUnknown 저장소에 기록이 없는 상태 (시작되지 않았거나 만료됨). 저장소에 기록되지 않습니다.
	TaskStatusUnknown TaskStatus = "unknown"

	// TaskStatusStarted 작업 실행 중. 취소 요청이 의미를 갖는 유일한 상태입니다.
	TaskStatusStarted TaskStatus = "started"

	// TaskStatusFinished 작업이 정상 완료됨
	TaskStatusFinished TaskStatus = "finished"

	// TaskStatusCancelled 외부 취소 신호(또는 서버 종료)로 완료 전에 중단됨
	TaskStatusCancelled TaskStatus = "cancelled"

	// TaskStatusFailed 작업 수행 중 오류 또는 panic이 발생함
	TaskStatusFailed TaskStatus = "failed"
)

func (s TaskStatus) String() string {
	return string(s)
}

// Valid 정의된 상태 값인지 여부를 반환합니다.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusUnknown, TaskStatusStarted, TaskStatusFinished, TaskStatusCancelled, TaskStatusFailed:
		return true
	}
	return false
}

// IsTerminal 더 이상 전이가 일어나지 않는 종료 상태인지 여부를 반환합니다.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusFinished, TaskStatusCancelled, TaskStatusFailed:
		return true
	}
	return false
}
