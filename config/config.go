// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/server"
	"github.com/ava-labs/cpmm/trace"
)

const (
	envPrefix = "CPMM"

	ConfigFileKey        = "config-file"
	HTTPHostKey          = "http-host"
	HTTPPortKey          = "http-port"
	DataDirKey           = "data-dir"
	InMemoryKey          = "in-memory"
	LogLevelKey          = "log-level"
	LogDisplayLevelKey   = "log-display-level"
	GenesisFileKey       = "genesis-file"
	ReadTimeoutKey       = "http-read-timeout"
	ReadHeaderTimeoutKey = "http-read-header-timeout"
	WriteTimeoutKey      = "http-write-timeout"
	IdleTimeoutKey       = "http-idle-timeout"
	AllowedOriginsKey    = "http-allowed-origins"
	AllowedHostsKey      = "http-allowed-hosts"
	ShutdownTimeoutKey   = "http-shutdown-timeout"
	URIKey               = "uri"
	TraceEnabledKey      = "trace-enabled"
	TraceSampleRateKey   = "trace-sample-rate"
	TraceEndpointKey     = "trace-endpoint"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTPHost        string
	HTTPPort        uint16
	DataDir         string
	InMemory        bool
	LogLevel        logging.Level
	LogDisplayLevel logging.Level
	GenesisFile     string
	Server          server.Config
	URI             string
	Trace           trace.Config
}

// Address is the host:port the API listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(int(c.HTTPPort)))
}

// RegisterFlags adds every config key to [fs] with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "optional config file (json, yaml or toml)")
	fs.String(HTTPHostKey, "127.0.0.1", "address the API listens on")
	fs.Uint16(HTTPPortKey, 9650, "port the API listens on")
	fs.String(DataDirKey, "."+consts.Name, "directory holding the database and logs")
	fs.Bool(InMemoryKey, false, "keep state in memory only")
	fs.String(LogLevelKey, logging.Info.String(), "log level written to file")
	fs.String(LogDisplayLevelKey, logging.Info.String(), "log level written to stdout")
	fs.String(GenesisFileKey, "", "genesis file (defaults are used when empty)")
	fs.Duration(ReadTimeoutKey, 30*time.Second, "maximum duration for reading a request")
	fs.Duration(ReadHeaderTimeoutKey, 30*time.Second, "maximum duration for reading request headers")
	fs.Duration(WriteTimeoutKey, 30*time.Second, "maximum duration before timing out a response")
	fs.Duration(IdleTimeoutKey, 120*time.Second, "maximum duration to wait for the next request")
	fs.StringSlice(AllowedOriginsKey, []string{"*"}, "origins allowed by CORS")
	fs.StringSlice(AllowedHostsKey, []string{"localhost"}, "hosts allowed to reach the API")
	fs.Duration(ShutdownTimeoutKey, 10*time.Second, "maximum duration to wait for in-flight requests on shutdown")
	fs.String(URIKey, "http://127.0.0.1:9650", "API endpoint used by client commands")
	fs.Bool(TraceEnabledKey, false, "export spans to a zipkin collector")
	fs.Float64(TraceSampleRateKey, 0.1, "fraction of traces to sample")
	fs.String(TraceEndpointKey, "http://localhost:9411/api/v2/spans", "zipkin collector endpoint")
}

// Load resolves the config from [fs], CPMM_* environment variables and the
// config file, in that order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if file := v.GetString(ConfigFileKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	displayLevel, err := logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c := &Config{
		HTTPHost:        v.GetString(HTTPHostKey),
		HTTPPort:        v.GetUint16(HTTPPortKey),
		DataDir:         v.GetString(DataDirKey),
		InMemory:        v.GetBool(InMemoryKey),
		LogLevel:        logLevel,
		LogDisplayLevel: displayLevel,
		GenesisFile:     v.GetString(GenesisFileKey),
		Server: server.Config{
			HTTP: server.HTTPConfig{
				ReadTimeout:       v.GetDuration(ReadTimeoutKey),
				ReadHeaderTimeout: v.GetDuration(ReadHeaderTimeoutKey),
				WriteTimeout:      v.GetDuration(WriteTimeoutKey),
				IdleTimeout:       v.GetDuration(IdleTimeoutKey),
			},
			AllowedOrigins:  v.GetStringSlice(AllowedOriginsKey),
			AllowedHosts:    v.GetStringSlice(AllowedHostsKey),
			ShutdownTimeout: v.GetDuration(ShutdownTimeoutKey),
		},
		URI: v.GetString(URIKey),
		Trace: trace.Config{
			Enabled:    v.GetBool(TraceEnabledKey),
			SampleRate: v.GetFloat64(TraceSampleRateKey),
			Endpoint:   v.GetString(TraceEndpointKey),
			AppName:    consts.Name,
			Version:    consts.Version.String(),
		},
	}
	return c, c.Verify()
}

func (c *Config) Verify() error {
	if !c.InMemory && c.DataDir == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, DataDirKey)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ShutdownTimeoutKey)
	}
	return nil
}
