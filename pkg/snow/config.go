package snow

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultOutput         = "data/snow.json"
	defaultTimeout        = 30 * time.Second
	defaultOpenMeteoURL   = "https://api.open-meteo.com"
	defaultOpenMeteoAgent = "tahoe-snow-report/1.0"
	defaultBrowserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"
	defaultBrowserAccept  = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

type SnowReport struct {
	Workers   int           `yaml:"workers"`
	Output    string        `yaml:"output"`
	HistoryDB string        `yaml:"history_db"`
	Timeout   time.Duration `yaml:"timeout"`
	OpenMeteo struct {
		BaseURL      string `yaml:"base_url"`
		UserAgent    string `yaml:"user_agent"`
		PastDays     int    `yaml:"past_days"`
		ForecastDays int    `yaml:"forecast_days"`
	} `yaml:"open_meteo"`
	OnTheSnow struct {
		UserAgent string `yaml:"user_agent"`
		Accept    string `yaml:"accept"`
	} `yaml:"onthesnow"`
	RemoveSelectors struct {
		Tags          []string `yaml:"tags"`
		Classes       []string `yaml:"classes"`
		ClassKeywords []string `yaml:"class_keywords"`
	} `yaml:"remove_selectors"`
	Resorts []Resort `yaml:"resorts"`

	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// SNOWREPORT_ 접두사 환경변수로 덮어쓸 수 있는 항목
type envOverrides struct {
	Output    string `envconfig:"OUTPUT"`
	Workers   int    `envconfig:"WORKERS"`
	HistoryDB string `envconfig:"HISTORY_DB"`
}

// NewSnowReport는 path의 YAML 설정을 읽어 SnowReport를 만듭니다.
// path가 비어 있으면 기본값만 사용합니다.
func NewSnowReport(path string) (*SnowReport, error) {
	var cfg SnowReport

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	var env envOverrides
	if err := envconfig.Process("snowreport", &env); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.HistoryDB != "" {
		cfg.HistoryDB = env.HistoryDB
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	for _, r := range cfg.Resorts {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func (sr *SnowReport) setDefaults() error {
	if sr.Workers == 0 {
		workerNums, err := cpu.Counts(false) // 물리적 코어 수
		if err != nil || workerNums == 0 {
			// 일부 가상 환경은 물리 코어 정보를 주지 않음
			workerNums, err = cpu.Counts(true)
			if err != nil {
				return fmt.Errorf("count cpu cores: %w", err)
			}
		}
		sr.Workers = max(workerNums, 1)
	}
	if sr.Output == "" {
		sr.Output = defaultOutput
	}
	if sr.Timeout == 0 {
		sr.Timeout = defaultTimeout
	}

	if sr.OpenMeteo.BaseURL == "" {
		sr.OpenMeteo.BaseURL = defaultOpenMeteoURL
	}
	if sr.OpenMeteo.UserAgent == "" {
		sr.OpenMeteo.UserAgent = defaultOpenMeteoAgent
	}
	if sr.OpenMeteo.PastDays == 0 {
		sr.OpenMeteo.PastDays = 3
	}
	if sr.OpenMeteo.ForecastDays == 0 {
		sr.OpenMeteo.ForecastDays = 1
	}

	if sr.OnTheSnow.UserAgent == "" {
		sr.OnTheSnow.UserAgent = defaultBrowserAgent
	}
	if sr.OnTheSnow.Accept == "" {
		sr.OnTheSnow.Accept = defaultBrowserAccept
	}

	// 본문 텍스트에서 제외할 태그
	if sr.RemoveSelectors.Tags == nil {
		sr.RemoveSelectors.Tags = []string{"script", "style", "template"}
	}

	if len(sr.Resorts) == 0 {
		sr.Resorts = DefaultResorts()
	}

	sr.client = &http.Client{Timeout: sr.Timeout}
	sr.logger = zap.NewNop()
	sr.now = time.Now
	return nil
}

func (sr *SnowReport) SetLogger(logger *zap.Logger) *SnowReport {
	sr.logger = logger
	return sr
}

func (sr *SnowReport) SetClient(client *http.Client) *SnowReport {
	sr.client = client
	return sr
}
