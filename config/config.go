package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config 服务配置
type Config struct {
	// 服务器配置
	Port        string   `mapstructure:"port"`
	Environment string   `mapstructure:"environment"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	// 数据库配置（可选，为空时不落库）
	DatabaseURL string `mapstructure:"database_url"`

	AuthConfig     `mapstructure:"auth"`
	OddsConfig     `mapstructure:"odds"`
	TelegramConfig `mapstructure:"telegram"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	// Password 全系统共用的演示口令（占位实现，见 DESIGN.md）
	Password string `mapstructure:"password"`

	// Delay 模拟远端认证的延迟
	Delay time.Duration `mapstructure:"delay"`
}

// OddsConfig 赔率刷新配置
type OddsConfig struct {
	// RefreshDelay 模拟行情接口的延迟
	RefreshDelay time.Duration `mapstructure:"refresh_delay"`

	// Jitter 每次刷新的最大加性扰动
	Jitter float64 `mapstructure:"jitter"`
}

// TelegramConfig Telegram 通道配置
type TelegramConfig struct {
	// Token 为空时派票走模拟通道
	Token string `mapstructure:"token"`
}

// Load 加载配置：configs/common.yml + 环境变量覆盖
func Load() (Config, error) {
	viper.SetDefault("port", "8080")
	viper.SetDefault("environment", "development")
	viper.SetDefault("cors_origins", []string{"*"})
	viper.SetDefault("database_url", "")
	viper.SetDefault("auth.password", "password123")
	viper.SetDefault("auth.delay", "1s")
	viper.SetDefault("odds.refresh_delay", "800ms")
	viper.SetDefault("odds.jitter", 0.05)
	viper.SetDefault("telegram.token", "")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("configs")
	viper.SetConfigName("common")
	viper.SetConfigType("yml")
	if err := viper.ReadInConfig(); err != nil {
		// 配置文件可以不存在，默认值和环境变量足够启动
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	bindEnvs(cfg)

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func bindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(v.Interface(), append(parts, tv)...)
		default:
			viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}
