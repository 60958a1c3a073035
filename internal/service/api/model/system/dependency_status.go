package system

// DependencyStatus 외부 의존성(상태 저장소) 점검 결과
type DependencyStatus struct {
	// 점검 결과: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 마지막 PING 응답 지연시간(ms)
	LatencyMs int64 `json:"latency_ms,omitempty" example:"2"`
	// 마지막 점검 시각 (RFC3339)
	CheckedAt string `json:"checked_at,omitempty" example:"2026-10-01T14:00:00Z"`
	// 정상 안내 문구 또는 점검 실패 원인
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
