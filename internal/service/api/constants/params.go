package constants

// 경로 파라미터 키 상수입니다.
const (
	// ParamTaskID 작업 ID 경로 파라미터 (/status/:task_id 등)
	ParamTaskID = "task_id"
)

// HTTP 헤더 키 상수입니다.
const (
	// Warning RFC 7234 표준 Warning 헤더 (deprecated 엔드포인트 경고용)
	Warning = "Warning"

	// XAPIDeprecated deprecated 상태 표시용 커스텀 헤더
	XAPIDeprecated = "X-API-Deprecated"

	// XAPIDeprecatedReplacement 대체 엔드포인트 표시용 커스텀 헤더
	XAPIDeprecatedReplacement = "X-API-Deprecated-Replacement"
)
