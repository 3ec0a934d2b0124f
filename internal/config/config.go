package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultBackendURL = "http://127.0.0.1:8000"

type Config struct {
	BackendURL string `env:"SCHEDULER_URL" envDefault:"http://127.0.0.1:8000"`

	// HTTPTimeout of zero means no client-side timeout; a hung request is
	// left to the overlap policy of the pollers.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0"`

	RealtimeInterval time.Duration `env:"REALTIME_POLL_INTERVAL" envDefault:"2s"`
	EventLogInterval time.Duration `env:"EVENT_LOG_POLL_INTERVAL" envDefault:"5s"`
	HourlyInterval   time.Duration `env:"HOURLY_POLL_INTERVAL" envDefault:"10s"`
	PlanInterval     time.Duration `env:"PLAN_POLL_INTERVAL" envDefault:"15s"`
	OrdersInterval   time.Duration `env:"WORK_ORDERS_POLL_INTERVAL" envDefault:"15s"`

	LogFile string `env:"LOG_FILE"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
