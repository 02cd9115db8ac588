package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a                 API server address in format [host]:[port]
//	-d                 database DSN
//	-migrate           apply migrations on startup
//	-c/-config         JSON or YAML config file path
//	-env-file          .env file path
//	-log-level         log level (debug, info, warn, error)
//	-session-sign-key  session cookie signing key
//	-session-duration  session lifetime (e.g. "168h")
//	-request-timeout   request timeout (e.g. "30s")
//	-client-dir        built client assets directory (dev server)
//	-watch-dir         directory watched for live reload (dev server)
//	-api-target        API base URL proxied under /api (dev server)
//	-no-live-reload    disable live reload (dev server)
//	-no-metrics        disable dev server metrics
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("threadboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.BoolVar(&cfg.Storage.DB.Migrate, "migrate", false, "Apply migrations on startup")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", ".env file path")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.SessionSignKey, "session-sign-key", "", "Session signing key")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session duration (e.g., 168h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Dev.ClientDir, "client-dir", "", "Built client assets directory")
	fs.StringVar(&cfg.Dev.WatchDir, "watch-dir", "", "Directory watched for live reload")
	fs.StringVar(&cfg.Dev.APITarget, "api-target", "", "API base URL proxied under /api")
	fs.BoolVar(&cfg.Dev.NoLiveReload, "no-live-reload", false, "Disable live reload")
	fs.BoolVar(&cfg.Dev.NoMetrics, "no-metrics", false, "Disable dev server metrics")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
