package api

import "time"

// Config of the admin HTTP server. An empty Addr disables it.
type Config struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

func (c Config) Enabled() bool {
	return c.Addr != ""
}
