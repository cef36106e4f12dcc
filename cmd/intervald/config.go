package main

import (
	"flag"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/intervald/internal/api"
	"github.com/nikmy/intervald/internal/server"
	"github.com/nikmy/intervald/pkg/builder"
	"github.com/nikmy/intervald/pkg/environment"
	"github.com/nikmy/intervald/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`
	Server      server.Config   `yaml:"server"`
	Admin       api.Config      `yaml:"admin"`
}

type lookupEnv func(key string) (string, bool)

func defaultConfig() *Config {
	return &Config{
		Environment: environment.Development,
		Server:      server.DefaultConfig(),
	}
}

// loadConfig applies, in order: defaults, the yaml file, the -env flag and
// environment variables.
func loadConfig(args []string, lookup lookupEnv) (*Config, error) {
	flags := flag.NewFlagSet("intervald", flag.ContinueOnError)
	path := flags.String("config", "config.yaml", "path to yaml config, may be absent")
	env := flags.String("env", "", "environment (dev, prod)")

	err := flags.Parse(args)
	if err != nil {
		return nil, errors.WrapFail(err, "parse flags")
	}

	return builder.From(defaultConfig()).
		MaybeUse(fromFile(*path)).
		Use(fromFlag(*env)).
		MaybeUse(fromEnvironment(lookup)).
		Get()
}

func fromFile(path string) func(cfg *Config) error {
	return func(cfg *Config) error {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return errors.WrapFailf(err, "read %q", path)
		}

		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			return errors.WrapFailf(err, "parse yaml %q", path)
		}
		return nil
	}
}

func fromFlag(raw string) func(cfg *Config) {
	return func(cfg *Config) {
		if raw != "" {
			cfg.Environment = environment.FromString(raw)
		}
	}
}

func fromEnvironment(lookup lookupEnv) func(cfg *Config) error {
	return func(cfg *Config) error {
		if v, ok := lookup("HOSTNAME"); ok && v != "" {
			cfg.Server.Host = v
		}
		if v, ok := lookup("ADMIN_ADDR"); ok {
			cfg.Admin.Addr = v
		}

		ints := []struct {
			key string
			dst *int
		}{
			{"PORT", &cfg.Server.Port},
			{"BUFFER_SIZE", &cfg.Server.BufferSize},
			{"MAX_CONNECTIONS", &cfg.Server.MaxConnections},
		}

		for _, i := range ints {
			v, ok := lookup(i.key)
			if !ok || v == "" {
				continue
			}

			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.WrapFailf(err, "parse %s", i.key)
			}
			*i.dst = n
		}
		return nil
	}
}
