// Package log logrus 기반의 애플리케이션 로깅 유틸리티를 제공합니다.
//
// 모든 로그에는 출처를 나타내는 "component" 필드를 붙입니다.
//
//	applog.WithComponentAndFields("task.service", applog.Fields{
//	    "task_id": id,
//	}).Info("작업 시작")
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 기본 출력을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetDebugMode debug가 true이면 TraceLevel, 아니면 InfoLevel로 로그 레벨을 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields 지정된 필드를 포함하는 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함하는 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함하는 Entry를 반환합니다.
// fields에 "component" 키가 있더라도 component 인자가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component

	return logrus.WithFields(newFields)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

// SetLevel 전역 로거의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// MaskSensitiveData 토큰, 비밀번호 같은 민감한 값을 로그에 남길 수 있도록 가립니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	if len(data) <= 12 {
		return data[:4] + "***"
	}

	return data[:4] + "***" + data[len(data)-4:]
}
