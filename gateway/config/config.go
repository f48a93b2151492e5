package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/review-dashboard/pkg/kafka"
	"github.com/Astemirdum/review-dashboard/pkg/logger"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GATEWAY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"5s"`
	WriteTimeout time.Duration
}

type AuthHTTPServer struct {
	Host string `envconfig:"AUTH_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"AUTH_HTTP_PORT" default:"8888"`
}

type ReviewHTTPServer struct {
	Host string `envconfig:"REVIEW_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"REVIEW_HTTP_PORT" default:"8070"`
}

type CompanyHTTPServer struct {
	Host string `envconfig:"COMPANY_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"COMPANY_HTTP_PORT" default:"8060"`
}

type Config struct {
	Server            HTTPServer `yaml:"server"`
	Kafka             kafka.Config
	AuthHTTPServer    AuthHTTPServer
	ReviewHTTPServer  ReviewHTTPServer
	CompanyHTTPServer CompanyHTTPServer
	Log               logger.Log `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
