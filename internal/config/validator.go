package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/darkkaiser/task-server/pkg/cronx"
	"github.com/darkkaiser/task-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 검증 함수가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름이 표시되도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "host_addr", func(fl validator.FieldLevel) bool {
		return validation.ValidateHostAddr(fl.Field().String()) == nil
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return cronx.Validate(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// validate 설정 로드 직후 각 항목의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c); err != nil {
		return err
	}

	if c.Store.Driver == StoreDriverRedis && strings.TrimSpace(c.Store.Redis.Addr) == "" {
		return apperrors.New(apperrors.InvalidInput, "redis 드라이버 사용 시 store.redis.addr 설정은 필수입니다")
	}

	// 실행 중인 작업마다 취소 대기 전용 연결을 1개씩 점유합니다.
	if c.Store.Driver == StoreDriverRedis && c.Task.MaxRunning > c.Store.Redis.ListenerPoolSize {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("task.max_running(%d)은 store.redis.listener_pool_size(%d)보다 클 수 없습니다", c.Task.MaxRunning, c.Store.Redis.ListenerPoolSize))
	}

	// 와일드카드는 단독으로만 사용할 수 있습니다.
	if len(c.HTTP.CORS.AllowOrigins) > 1 {
		for _, origin := range c.HTTP.CORS.AllowOrigins {
			if strings.TrimSpace(origin) == "*" {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}
		}
	}

	return nil
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	fieldErr := validationErrors[0]
	key := configKey(fieldErr.Namespace())

	switch fieldErr.Tag() {
	case "oneof":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 값은 [%s] 중 하나여야 합니다: '%v'", key, fieldErr.Param(), fieldErr.Value()))
	case "host_addr":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 주소 형식이 올바르지 않습니다: '%v' (형식: host:port, 예: localhost:6379)", key, fieldErr.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s Cron 표현식이 올바르지 않습니다: '%v' (예: @every 30s, 0 */1 * * * *)", key, fieldErr.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
	case "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 설정은 필수입니다", key))
	case "file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s에 지정된 파일을 찾을 수 없습니다: '%v'", key, fieldErr.Value()))
	case "min", "max", "gt":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 값이 허용 범위를 벗어났습니다: '%v' (조건: %s=%s)", key, fieldErr.Value(), fieldErr.Tag(), fieldErr.Param()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다 (조건: %s)", key, fieldErr.Tag()))
}

// configKey "AppConfig.store.redis.addr" 형식의 Namespace에서 최상위 구조체 이름을 제거합니다.
func configKey(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
