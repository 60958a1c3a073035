package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func newEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		withVerbose  bool
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"INFO는 메인에만 기록", InfoLevel, true, true, false, false},
		{"ERROR는 메인과 Critical에 기록", ErrorLevel, true, true, true, false},
		{"DEBUG는 Verbose에만 기록", DebugLevel, true, false, false, true},
		{"Verbose 미설정 시 DEBUG는 메인에 기록", DebugLevel, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mainBuf, criticalBuf, verboseBuf, consoleBuf bytes.Buffer
			h := &hook{
				mainWriter:     &mainBuf,
				criticalWriter: &criticalBuf,
				consoleWriter:  &consoleBuf,
				formatter:      &logrus.TextFormatter{DisableColors: true},
			}
			if tt.withVerbose {
				h.verboseWriter = &verboseBuf
			}

			require.NoError(t, h.Fire(newEntry(tt.level, "routing")))

			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0, "main")
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0, "critical")
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0, "verbose")
			assert.Positive(t, consoleBuf.Len(), "콘솔에는 모든 레벨이 기록되어야 합니다")
		})
	}
}

func TestHook_Fire_WriteError(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: failingWriter{},
		formatter:      &logrus.TextFormatter{DisableColors: true},
	}

	err := h.Fire(newEntry(ErrorLevel, "critical"))
	assert.Error(t, err)
	assert.Positive(t, mainBuf.Len(), "일부 Writer 실패와 관계없이 나머지 Writer에는 기록되어야 합니다")
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{mainWriter: &mainBuf, formatter: &logrus.TextFormatter{}}

	h.Close()

	require.NoError(t, h.Fire(newEntry(InfoLevel, "ignored")))
	assert.Zero(t, mainBuf.Len())
}

func TestHook_ConcurrentFireAndClose(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var buf bytes.Buffer
	h := &hook{mainWriter: &lockedWriter{mu: &mu, w: &buf}, formatter: &logrus.TextFormatter{}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = h.Fire(newEntry(InfoLevel, "concurrent"))
			}
		}()
	}
	h.Close()
	wg.Wait()
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
