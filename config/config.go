package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	AgingTimeQuantum      int
	// API request limits; they bound the timeline grid a request allocates.
	MaxLastInstant int
	MaxProcesses   int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = LoadSchedulerConfig("./"); err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from the first path that has one.
// A missing file leaves the defaults; SCHEDULER_* env vars override both.
func LoadSchedulerConfig(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 1)
	v.SetDefault("scheduler.aging.time_quantum", 1)
	v.SetDefault("scheduler.max_last_instant", 10000)
	v.SetDefault("scheduler.max_processes", 100)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		AgingTimeQuantum:      v.GetInt("scheduler.aging.time_quantum"),
		MaxLastInstant:        v.GetInt("scheduler.max_last_instant"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
	}, nil
}
