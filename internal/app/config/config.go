package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Tinybird  TinybirdConfig  `mapstructure:"tinybird"`
	Warehouse WarehouseConfig `mapstructure:"warehouse"`
	LLM       LLMConfig       `mapstructure:"llm"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// TinybirdConfig 上游分析数据源配置（产品/货件数据）
type TinybirdConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Token      string `mapstructure:"token"`
	Limit      int    `mapstructure:"limit"`
	CompanyURL string `mapstructure:"company_url"`
}

// WarehouseConfig 仓库数据源配置（可选）
type WarehouseConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

// LLMConfig LLM 洞察生成配置（可选，未配置时走规则模板）
type LLMConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Load 从配置文件加载配置，环境变量（DPBOARD_ 前缀）优先
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DPBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// applyDefaults 填充默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.Tinybird.Limit <= 0 {
		cfg.Tinybird.Limit = 500
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.MaxTokens <= 0 {
		cfg.LLM.MaxTokens = 512
	}
	if cfg.LLM.Temperature <= 0 {
		cfg.LLM.Temperature = 0.2
	}
}

// Validate 验证配置完整性
// Tinybird 数据源是所有接口的硬依赖，缺失视为致命配置错误
func (c *Config) Validate() error {
	if c.Tinybird.BaseURL == "" {
		return fmt.Errorf("tinybird base_url is required")
	}
	if c.Tinybird.Token == "" {
		return fmt.Errorf("tinybird token is required")
	}
	if c.Warehouse.BaseURL != "" && c.Warehouse.Token == "" {
		return fmt.Errorf("warehouse token is required when warehouse base_url is set")
	}
	return nil
}

// WarehouseEnabled 是否配置了仓库数据源
func (c *Config) WarehouseEnabled() bool {
	return c.Warehouse.BaseURL != ""
}

// LLMEnabled 是否配置了 LLM
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}

// GetServerPort 获取服务端口
func (c *Config) GetServerPort() string {
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "8080"
}
