package internal

import "time"

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	Locale          string        `env:"LOCALE,default=en-US"`
	UserID          string        `env:"USER_ID,default=@me:shell.chat"`
	Colours         bool          `env:"COLOURS,default=true"`
	DebugPort       int           `env:"DEBUG_PORT,default=8077"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}
