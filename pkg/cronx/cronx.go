// Package cronx 애플리케이션 전역에서 사용하는 Cron 표현식 파서를 제공합니다.
package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함한 6필드 형식과 Descriptor(@every 등)를 지원하는 파서를 반환합니다.
//
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - "0 */5 * * * *": 매 5분 0초
//   - "@every 30s": 30초마다
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate StandardParser 기준으로 Cron 표현식을 검증합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
