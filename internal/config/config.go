package config

import (
	"fmt"
	"strings"
	"time"

	"utube/pkg/logger"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置，Host 为空时不启用登录限流
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled 是否配置了 Redis
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKey       string `mapstructure:"access_key"`
	SecretKey       string `mapstructure:"secret_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	ThumbnailBucket string `mapstructure:"thumbnail_bucket"`
}

// Enabled 是否配置了 MinIO
func (m *MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers       []string `mapstructure:"brokers"`
	ActivityTopic string   `mapstructure:"activity_topic"`
	IndexerGroup  string   `mapstructure:"indexer_group"`
}

// Enabled 是否配置了 Kafka
func (k *KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.ActivityTopic != ""
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts      []string `mapstructure:"hosts"`
	VideoIndex string   `mapstructure:"video_index"`
}

// Enabled 是否配置了 Elasticsearch
func (e *ElasticsearchConfig) Enabled() bool {
	return len(e.Hosts) > 0
}

// JWTConfig JWT配置，ExpireHours 为 0 时签发不过期的 token
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ExpireDuration 返回过期时间
func (j *JWTConfig) ExpireDuration() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// AuthConfig 密码哈希与登录限流配置
type AuthConfig struct {
	BcryptCost       int `mapstructure:"bcrypt_cost"`
	LoginMaxAttempts int `mapstructure:"login_max_attempts"`
	LoginWindow      int `mapstructure:"login_window"` // 秒
}

// LoginWindowDuration 返回登录限流窗口
func (a *AuthConfig) LoginWindowDuration() time.Duration {
	return time.Duration(a.LoginWindow) * time.Second
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// Options 转换为 logger 选项
func (l *LogConfig) Options(service, version string) logger.Options {
	return logger.Options{
		Level:    l.Level,
		Format:   l.Format,
		Output:   l.Output,
		FilePath: l.FilePath,
		Service:  service,
		Version:  version,
	}
}

// 全局配置实例
var globalConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "utube")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 3001)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("minio.thumbnail_bucket", "thumbnails")
	v.SetDefault("kafka.activity_topic", "utube.activity")
	v.SetDefault("kafka.indexer_group", "utube-search-indexer")
	v.SetDefault("elasticsearch.video_index", "utube_videos")
	v.SetDefault("jwt.issuer", "utube")
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.login_max_attempts", 10)
	v.SetDefault("auth.login_window", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}

// Load 加载配置文件，环境变量 UTUBE_<SECTION>_<KEY> 覆盖文件中的值
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("UTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret must be set")
	}

	globalConfig = &cfg

	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}
