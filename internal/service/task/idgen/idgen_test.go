package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_New_Structure 생성된 ID가 32자리 소문자 16진수인지 검증합니다.
func TestGenerator_New_Structure(t *testing.T) {
	t.Parallel()

	var generator Generator

	for i := 0; i < 100; i++ {
		id := generator.New()

		require.Len(t, id.String(), Length)
		for _, r := range id.String() {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "16진수 소문자가 아닌 문자: %c in %s", r, id)
		}
		assert.NoError(t, id.Validate())

		// 하이픈을 제거한 UUID v4 표현과 동일해야 합니다.
		u, err := uuid.Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
	}
}

// TestGenerator_New_Uniqueness 동시에 생성해도 ID가 중복되지 않는지 검증합니다.
func TestGenerator_New_Uniqueness(t *testing.T) {
	t.Parallel()

	var generator Generator

	const goroutines = 50
	const iterations = 1000
	totalIDs := goroutines * iterations

	ids := make(chan string, totalIDs)
	var wg sync.WaitGroup

	wg.Add(goroutines)
	start := time.Now()
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				ids <- generator.New().String()
			}
		}()
	}

	wg.Wait()
	close(ids)
	duration := time.Since(start)

	uniqueIDs := make(map[string]struct{}, totalIDs)
	for id := range ids {
		uniqueIDs[id] = struct{}{}
	}

	assert.Equal(t, totalIDs, len(uniqueIDs), "생성된 ID는 모두 고유해야 합니다")
	t.Logf("Generated %d IDs in %v (%.0f IDs/sec)", totalIDs, duration, float64(totalIDs)/duration.Seconds())
}

func BenchmarkGenerator_New(b *testing.B) {
	var generator Generator

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = generator.New()
	}
}
