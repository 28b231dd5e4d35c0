// Package config 提供 TOML 配置加载，支持环境变量覆盖与默认值
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/wyfcoding/optionpricing/pkg/logger"
)

// Config 定价服务配置
type Config struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// HTTP 服务配置
	HTTP HTTPConfig `mapstructure:"http"`
	// 数据库配置
	Database DatabaseConfig `mapstructure:"database"`
	// Kafka 配置
	Kafka KafkaConfig `mapstructure:"kafka"`
	// 对象存储配置
	Storage StorageConfig `mapstructure:"storage"`
	// 模拟配置
	Simulation SimulationConfig `mapstructure:"simulation"`
	// 日志配置
	Logger logger.Config `mapstructure:"logger"`
	// 指标配置
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	// 监听地址
	Host string `mapstructure:"host"`
	// 监听端口
	Port int `mapstructure:"port"`
	// 读超时（秒）
	ReadTimeout int `mapstructure:"read_timeout"`
	// 写超时（秒）
	WriteTimeout int `mapstructure:"write_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// 数据源名称，为空时禁用运行历史持久化
	DSN string `mapstructure:"dsn"`
	// 最大连接数
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// 最大空闲连接数
	MaxIdleConns int `mapstructure:"max_idle_conns"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	// Broker 地址列表，为空时禁用事件发布
	Brokers []string `mapstructure:"brokers"`
	// 定价完成事件主题
	Topic string `mapstructure:"topic"`
}

// StorageConfig 对象存储配置（MinIO / S3 兼容）
type StorageConfig struct {
	// 端点地址，为空时禁用结果上传
	Endpoint string `mapstructure:"endpoint"`
	// 访问密钥
	AccessKey string `mapstructure:"access_key"`
	// 私密密钥
	SecretKey string `mapstructure:"secret_key"`
	// 是否启用 TLS
	UseSSL bool `mapstructure:"use_ssl"`
	// 结果存储桶
	Bucket string `mapstructure:"bucket"`
	// 对象名前缀
	Prefix string `mapstructure:"prefix"`
}

// SimulationConfig 按需定价接口的固定参数
type SimulationConfig struct {
	// 无风险利率
	RiskFreeRate float64 `mapstructure:"risk_free_rate"`
	// 到期时间 (年)
	Maturity float64 `mapstructure:"maturity"`
	// 单次请求允许的最大路径数
	MaxPaths int `mapstructure:"max_paths"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 是否启用
	Enabled bool `mapstructure:"enabled"`
	// Prometheus 监听端口
	Port int `mapstructure:"port"`
	// 指标路径
	Path string `mapstructure:"path"`
}

// Load 从 TOML 文件加载配置，支持 APP_ 前缀环境变量覆盖
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 对象存储的桶和前缀沿用历史部署的环境变量契约
	if bucket := os.Getenv("RESULT_BUCKET"); bucket != "" {
		cfg.Storage.Bucket = bucket
	}
	if prefix := os.Getenv("RESULT_PREFIX"); prefix != "" {
		cfg.Storage.Prefix = prefix
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTP.Port)
	}
	if c.Storage.Endpoint != "" && c.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required when endpoint is set")
	}
	if c.Simulation.MaxPaths < 1 {
		return fmt.Errorf("simulation max_paths must be at least 1")
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 30)
	v.SetDefault("http.write_timeout", 30)

	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("kafka.topic", "pricing.simulation.completed")

	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.prefix", "")

	// 按需接口的历史契约：r=0.5, T=1.0
	v.SetDefault("simulation.risk_free_rate", 0.5)
	v.SetDefault("simulation.maturity", 1.0)
	v.SetDefault("simulation.max_paths", 100000000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
}
