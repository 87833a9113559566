package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Rotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level  string
	JSON   bool
	Rotate Rotate
}

type Mongo struct {
	URI               string
	Database          string
	MaxPoolSize       int
	ConnectTimeoutSec int
}

// Policy 入口保护参数（限速/并发/包体/超时）
type Policy struct {
	RateLimitRPS    int
	RateLimitBurst  int
	MaxConcurrency  int64
	MaxBodyMB       int64
	RequestTimeoutS int
}

type Config struct {
	App    App
	Log    Log
	Mongo  Mongo
	Policy Policy
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 缺省值：限速与超时不依赖配置文件也能跑
	v.SetDefault("policy.ratelimitrps", 200)
	v.SetDefault("policy.ratelimitburst", 400)
	v.SetDefault("policy.maxconcurrency", 300)
	v.SetDefault("policy.maxbodymb", 16)
	v.SetDefault("policy.requesttimeouts", 10)
	v.SetDefault("mongo.maxpoolsize", 100)
	v.SetDefault("mongo.connecttimeoutsec", 10)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
