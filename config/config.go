package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用程序配置结构体
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Storage StorageConfig `mapstructure:"storage"`
	Extract ExtractConfig `mapstructure:"extract"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // 日志级别 debug/info/warn/error
	File       string `mapstructure:"file"`        // 日志文件路径，为空时输出到标准输出
	MaxSize    int    `mapstructure:"max_size"`    // 单个日志文件最大体积(MB)
	MaxBackups int    `mapstructure:"max_backups"` // 保留的旧日志文件数量
	MaxAge     int    `mapstructure:"max_age"`     // 旧日志文件保留天数
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`          // 输出目录，不存在时自动创建
	DefaultName string `mapstructure:"default_name"` // 默认输出文件名
}

// StorageConfig 存储配置
type StorageConfig struct {
	Type      string `mapstructure:"type"`     // 存储类型：local 或 minio
	Bucket    string `mapstructure:"bucket"`   // MinIO桶名称
	Endpoint  string `mapstructure:"endpoint"` // MinIO端点
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"` // 是否使用SSL
}

// ExtractConfig 提取配置
type ExtractConfig struct {
	Validate bool   `mapstructure:"validate"` // 提取前是否校验源PDF
	TempDir  string `mapstructure:"temp_dir"` // 临时工作目录，为空时使用系统默认
}

// Load 从文件和环境变量加载配置
// configPath为空时只使用默认值和环境变量
func Load(configPath string) (*Config, error) {
	var config Config

	// 初始化viper
	v := viper.New()

	if configPath != "" {
		// 设置配置文件路径和类型
		v.SetConfigFile(configPath)

		// 尝试读取配置文件
		// SetConfigFile时文件缺失报告的是PathError而不是ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if notFound || os.IsNotExist(err) {
				log.Printf("Warning: Config file not found at %s, using defaults", configPath)
			} else {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		} else {
			log.Printf("Using config file: %s", v.ConfigFileUsed())
		}
	}

	// 设置默认值
	setDefaults(v)

	// 支持环境变量覆盖
	v.SetEnvPrefix("PDF_EXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 解析配置到结构体
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	return &config, nil
}

// setDefaults 设置配置的默认值
func setDefaults(v *viper.Viper) {
	// 日志默认配置
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)

	// 输出默认配置
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.default_name", "output.pdf")

	// 存储默认配置
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.bucket", "pdf-extract")
	v.SetDefault("storage.use_ssl", false)

	// 提取默认配置
	v.SetDefault("extract.validate", false)
	v.SetDefault("extract.temp_dir", "")
}
