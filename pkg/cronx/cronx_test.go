package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"6필드 표현식", "0 */5 * * * *", false},
		{"@every Descriptor", "@every 30s", false},
		{"@hourly Descriptor", "@hourly", false},
		{"5필드 표현식은 지원하지 않음", "*/5 * * * *", true},
		{"빈 문자열", "", true},
		{"잘못된 duration", "@every abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStandardParser_Next(t *testing.T) {
	t.Parallel()

	schedule, err := StandardParser().Parse("@every 30s")
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(30*time.Second), schedule.Next(base))
}
