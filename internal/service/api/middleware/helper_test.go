package middleware

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	applog "github.com/darkkaiser/task-server/pkg/log"
	"github.com/stretchr/testify/require"
)

// captureLogs 전역 로거 출력을 버퍼로 변경합니다. 전역 상태를 변경하므로 호출하는 테스트는 병렬로 실행하지 않습니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(os.Stderr)
		applog.SetFormatter(&applog.TextFormatter{})
		applog.SetLevel(applog.InfoLevel)
	})

	return buf
}

// lastLogEntry 버퍼의 마지막 JSON 로그 라인을 파싱합니다.
func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1], "로그가 기록되어야 합니다")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}
