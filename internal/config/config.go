package config

import (
	"github.com/caarlos0/env/v11"
)

// Config는 Hekto Admin 구동에 필요한 전체 설정입니다.
// (모든 값은 환경 변수에서 로드됩니다)
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`

	Sanity SanityConfig
	Admin  AdminConfig
}

// SanityConfig는 외부 문서 스토어 연결 파라미터입니다.
type SanityConfig struct {
	ProjectID  string `env:"SANITY_PROJECT_ID,required"`
	Dataset    string `env:"SANITY_DATASET" envDefault:"production"`
	APIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	Token      string `env:"SANITY_API_TOKEN"`
}

// AdminConfig는 단일 관리자 계정입니다.
// (고정 크리덴셜 쌍은 원본 그대로의 플레이스홀더이며, 운영 전환 시 교체 대상입니다)
type AdminConfig struct {
	Name     string `env:"HEKTO_ADMIN_NAME" envDefault:"ZubairRiaz"`
	Password string `env:"HEKTO_ADMIN_PASSWORD" envDefault:"1718"`
}

// Load는 환경 변수에서 설정을 파싱합니다.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
