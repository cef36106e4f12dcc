package server

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 2004
	DefaultBufferSize = 20
)

type Config struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	BufferSize int    `yaml:"bufferSize"`

	// MaxConnections caps concurrently served connections, 0 means no cap.
	MaxConnections int `yaml:"maxConnections"`

	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`

	// GracePeriod bounds how long shutdown waits for open connections
	// before closing them, 0 waits until every client disconnects.
	GracePeriod time.Duration `yaml:"gracePeriod"`
}

func DefaultConfig() Config {
	return Config{
		Host:       DefaultHost,
		Port:       DefaultPort,
		BufferSize: DefaultBufferSize,
	}
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
