package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck     = "헬스체크 요청"
	LogMsgVersionInfo     = "버전 정보 요청"
	LogMsgTaskStarted     = "작업 시작 요청 처리 완료"
	LogMsgTaskStatus      = "작업 상태 조회 요청 처리 완료"
	LogMsgTaskCancelled   = "작업 취소 요청 처리 완료"
	LogMsgTaskRequestFail = "작업 요청 처리 실패"

	// ------------------------------------------------------------------------------------------------
	// 미들웨어 / 에러 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest             = "HTTP 요청"
	LogMsgPanicRecovered          = "PANIC 발생: 요청 처리 중 예기치 않은 오류가 발생하여 복구되었습니다"
	LogMsgRateLimitExceeded       = "요청 속도 제한 초과"
	LogMsgDeprecatedEndpointUsed  = "Deprecated 엔드포인트 사용"
	LogMsgHTTP4xxClientError      = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError      = "HTTP 5xx: 서버 내부 오류"
	LogMsgHTTPErrorResponseFailed = "HTTP 에러 응답 전송 실패"
)
