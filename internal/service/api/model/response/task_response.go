package response

// TaskStartResponse 작업 시작 응답
type TaskStartResponse struct {
	// TaskID 새로 발급된 작업 ID (32자리 hex)
	TaskID string `json:"task_id" example:"3f2b8c6e9a0d4e1f8b7c6d5e4f3a2b1c"`
}

// TaskResponse 작업 상태 응답
type TaskResponse struct {
	// TaskID 조회한 작업 ID
	TaskID string `json:"task_id" example:"3f2b8c6e9a0d4e1f8b7c6d5e4f3a2b1c"`

	// Status 작업 상태: unknown, started, finished, cancelled, failed
	Status string `json:"status" example:"started" enums:"unknown,started,finished,cancelled,failed"`
}
