package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(InvalidInput, "작업 ID가 비어있습니다")
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, InvalidInput, appErr.Type())
	assert.Equal(t, "작업 ID가 비어있습니다", appErr.Message())
	assert.Equal(t, "[InvalidInput] 작업 ID가 비어있습니다", err.Error())
	assert.Nil(t, appErr.Unwrap())
	assert.NotEmpty(t, appErr.Stack())
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "작업을 찾을 수 없습니다: %s", "abc")
	assert.Equal(t, "[NotFound] 작업을 찾을 수 없습니다: abc", err.Error())
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(99), "ErrorType(99)"},
		{ErrorType(-1), "ErrorType(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("원인 에러 체이닝", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, Unavailable, "저장소 연결 실패")
		assert.Equal(t, "[Unavailable] 저장소 연결 실패: standard error", err.Error())
		assert.ErrorIs(t, err, errStd)
	})

	t.Run("nil 에러는 nil을 반환", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, Wrap(nil, Internal, "무시됨"))
		assert.NoError(t, Wrapf(nil, Internal, "무시됨 %d", 1))
	})

	t.Run("context 에러 보존", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(context.Canceled, Timeout, "대기 중단 (id: %s)", "abc")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "id: abc")
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	inner := New(Unavailable, "redis 응답 없음")
	outer := Wrap(inner, Internal, "상태 조회 실패")
	wrappedStd := fmt.Errorf("std wrap: %w", outer)

	assert.True(t, Is(outer, Internal))
	assert.True(t, Is(outer, Unavailable))
	assert.True(t, Is(wrappedStd, Unavailable))
	assert.False(t, Is(outer, NotFound))
	assert.False(t, Is(errStd, Unknown))
	assert.False(t, Is(nil, Unknown))
}

func TestTypeOfAndUnderlyingType(t *testing.T) {
	t.Parallel()

	inner := New(Unavailable, "redis 응답 없음")
	outer := Wrap(inner, InvalidInput, "상태 조회 실패")

	assert.Equal(t, InvalidInput, TypeOf(outer))
	assert.Equal(t, Unavailable, UnderlyingType(outer))
	assert.Equal(t, Unknown, TypeOf(errStd))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, Unavailable, TypeOf(fmt.Errorf("wrap: %w", inner)))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "1단계"), Internal, "2단계")
	assert.Equal(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))
}

func TestAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrap: %w", New(Conflict, "충돌"))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Conflict, appErr.Type())
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(Unavailable, "redis 응답 없음"), Internal, "상태 조회 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detailed, "[Internal] 상태 조회 실패"))
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[Unavailable] redis 응답 없음")
	assert.Equal(t, 1, strings.Count(detailed, "Stack trace:"), "가장 안쪽 AppError의 스택만 출력되어야 합니다")
	assert.Contains(t, detailed, "errors_test.go")
}

func TestStackTrace(t *testing.T) {
	t.Parallel()

	err := New(Internal, "스택 테스트")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))

	stack := appErr.Stack()
	require.NotEmpty(t, stack)
	assert.LessOrEqual(t, len(stack), maxStackFrames)
	assert.Equal(t, "errors_test.go", stack[0].File)
	assert.Contains(t, stack[0].Function, "TestStackTrace")
	assert.Positive(t, stack[0].Line)
}

func TestConcurrentErrorCreation(t *testing.T) {
	t.Parallel()

	const goroutines = 50

	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = Wrapf(errStd, Unavailable, "작업 %d", i)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.True(t, Is(err, Unavailable))
		assert.Contains(t, err.Error(), fmt.Sprintf("작업 %d", i))
	}
}
