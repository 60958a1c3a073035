package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/task-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "task-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정값을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: TASK_STORE__REDIS__ADDR=redis:6379 -> store.redis.addr
	EnvPrefix = "TASK_"
)

// 저장소 드라이버
const (
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug  bool         `json:"debug"`
	Task   TaskConfig   `json:"task"`
	Store  StoreConfig  `json:"store"`
	Health HealthConfig `json:"health"`
	HTTP   HTTPConfig   `json:"http"`
}

// TaskConfig 작업 실행과 관련된 설정
type TaskConfig struct {
	// WorkDuration 기본 작업(placeholder)이 완료되기까지 걸리는 시간
	WorkDuration time.Duration `json:"work_duration" validate:"gt=0"`

	// ShutdownTimeout 서비스 종료 시 실행 중인 작업이 최종 상태를 기록할 때까지 기다리는 최대 시간
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`

	// StatusWriteTimeout 취소/실패 상태를 기록할 때 적용하는 제한 시간
	StatusWriteTimeout time.Duration `json:"status_write_timeout" validate:"gt=0"`

	// MaxRunning 이 인스턴스에서 동시에 실행할 수 있는 작업의 최대 개수
	//
	// 실행 중인 작업은 취소 신호 대기를 위해 저장소 연결을 1개씩 점유하므로,
	// redis 드라이버에서는 store.redis.listener_pool_size 이하여야 합니다.
	// 한도에 도달하면 새 작업 시작 요청은 503으로 거절됩니다.
	MaxRunning int `json:"max_running" validate:"min=1"`
}

// StoreConfig 작업 상태와 취소 신호를 공유하는 외부 저장소 설정
type StoreConfig struct {
	Driver    string `json:"driver" validate:"oneof=redis memory"`
	KeyPrefix string `json:"key_prefix" validate:"max=64"`

	// StatusTTL 상태 키의 만료 시간 (0: 만료 없음)
	StatusTTL time.Duration `json:"status_ttl" validate:"min=0"`

	// SignalTTL 소비되지 않은 취소 신호 키의 만료 시간 (0: 만료 없음)
	SignalTTL time.Duration `json:"signal_ttl" validate:"min=0"`

	// CancelPollInterval 취소 신호 대기(BLPOP) 1회의 최대 블로킹 시간
	CancelPollInterval time.Duration `json:"cancel_poll_interval" validate:"min=1s"`

	Redis RedisConfig `json:"redis"`
}

// RedisConfig Redis 연결 설정
type RedisConfig struct {
	Addr     string `json:"addr" validate:"omitempty,host_addr"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db" validate:"min=0"`

	// PoolSize 상태 조회/기록, 취소 신호 전송 등 일반 명령에 사용하는 연결 풀의 크기
	PoolSize int `json:"pool_size" validate:"min=1"`

	// ListenerPoolSize 취소 신호 대기(BLPOP) 전용 연결 풀의 크기
	//
	// 대기 중인 작업마다 연결을 1개씩 점유하므로 일반 명령용 풀과 분리하여,
	// 실행 중인 작업이 많아져도 상태 조회/기록이 연결을 얻지 못하는 일이 없도록 합니다.
	ListenerPoolSize int `json:"listener_pool_size" validate:"min=1"`

	DialTimeout time.Duration `json:"dial_timeout" validate:"gt=0"`

	// ConnectMaxElapsed 시작 시 Redis 연결 재시도를 포기하기까지의 최대 시간 (0: 재시도 없음)
	ConnectMaxElapsed time.Duration `json:"connect_max_elapsed" validate:"min=0"`
}

// HealthConfig 저장소 상태 점검 스케줄 설정
type HealthConfig struct {
	TimeSpec    string        `json:"time_spec" validate:"required,cron_spec"`
	PingTimeout time.Duration `json:"ping_timeout" validate:"gt=0"`
}

// HTTPConfig HTTP 서버 설정
type HTTPConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`

	RequestTimeout     time.Duration `json:"request_timeout" validate:"gt=0"`
	RateLimitPerSecond int           `json:"rate_limit_per_second" validate:"min=1"`
	RateLimitBurst     int           `json:"rate_limit_burst" validate:"min=1"`

	CORS CORSConfig `json:"cors"`
}

// CORSConfig CORS 허용 Origin 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// newDefaultConfig 설정 파일과 환경 변수가 지정하지 않은 항목에 적용되는 기본값입니다.
func newDefaultConfig() *AppConfig {
	return &AppConfig{
		Debug: false,
		Task: TaskConfig{
			WorkDuration:       10 * time.Second,
			ShutdownTimeout:    30 * time.Second,
			StatusWriteTimeout: 5 * time.Second,
			MaxRunning:         100,
		},
		Store: StoreConfig{
			Driver:             StoreDriverRedis,
			KeyPrefix:          "",
			CancelPollInterval: 1 * time.Second,
			Redis: RedisConfig{
				Addr:              "localhost:6379",
				DB:                0,
				PoolSize:          32,
				ListenerPoolSize:  128,
				DialTimeout:       5 * time.Second,
				ConnectMaxElapsed: 30 * time.Second,
			},
		},
		Health: HealthConfig{
			TimeSpec:    "@every 30s",
			PingTimeout: 2 * time.Second,
		},
		HTTP: HTTPConfig{
			ListenPort:         8000,
			RequestTimeout:     60 * time.Second,
			RateLimitPerSecond: 20,
			RateLimitBurst:     40,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
	}
}

// VerifyRecommendations 오류는 아니지만 운영 환경에서 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if c.Store.Driver == StoreDriverMemory && !c.Debug {
		warnings = append(warnings, "메모리 저장소(memory)는 프로세스 간 작업 상태를 공유하지 않습니다. 다중 인스턴스 운영 시 redis 드라이버를 사용하세요")
	}
	if c.Store.Driver == StoreDriverRedis && c.Store.Redis.PoolSize < 8 {
		warnings = append(warnings, fmt.Sprintf("Redis 일반 명령용 연결 풀(pool_size: %d)이 작습니다. 동시 API 요청이 많으면 연결 대기가 발생할 수 있습니다", c.Store.Redis.PoolSize))
	}

	return warnings
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 설정을 로드합니다.
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
		if !optional {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환 (정의되지 않은 키가 있으면 실패)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 예: TASK_STORE__REDIS__POOL_SIZE -> store.redis.pool_size
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
