package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{"와일드카드", "*", false},
		{"https 도메인", "https://example.com", false},
		{"포트 포함", "http://localhost:3000", false},
		{"IP 주소", "http://127.0.0.1:8000", false},
		{"빈 문자열", "", true},
		{"슬래시로 끝남", "https://example.com/", true},
		{"경로 포함", "https://example.com/api", true},
		{"지원하지 않는 스키마", "ftp://example.com", true},
		{"잘못된 포트", "http://example.com:70000", true},
		{"숫자 TLD", "http://example.123", true},
		{"사용자 정보 포함", "https://user@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHostAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"localhost", "localhost:6379", false},
		{"호스트명", "redis.internal:6380", false},
		{"IPv4", "10.0.0.5:6379", false},
		{"IPv6", "[::1]:6379", false},
		{"호스트 생략", ":6379", false},
		{"포트 누락", "localhost", true},
		{"포트 범위 초과", "localhost:0", true},
		{"숫자가 아닌 포트", "localhost:redis", true},
		{"잘못된 호스트명", "-bad-.host:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHostAddr(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
