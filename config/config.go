package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/beyondstorage/go-storage/v4/types"

	"github.com/beyondstorage/beyond-urlconn/urlconn"
	"github.com/beyondstorage/beyond-urlconn/utils"
)

// A Config stores a configuration of BeyondURLConn.
type Config struct {
	ConnectTimeout int               `toml:"connect-timeout"` // milliseconds
	LogLevel       string            `toml:"log-level"`
	PProf          string            `toml:"pprof"`
	Headers        map[string]string `toml:"headers"`
	Services       map[string]string `toml:"services"`
}

// OpenerSettings define all the opener settings.
type OpenerSettings struct {
	ConnectTimeout time.Duration     // Connect timeout of every handle, zero for none
	Header         http.Header       // Request properties added to every handle
	Services       map[string]string // Scheme to storage connection string
}

// LoadConfigFromFilepath loads configuration from a specified local path.
// It returns error if file not found or decode failed.
func LoadConfigFromFilepath(p string) (*Config, error) {
	conf := &Config{}
	if p != "" {
		if _, err := toml.DecodeFile(p, conf); err != nil {
			return nil, fmt.Errorf("load config %s: %w", p, err)
		}
	}
	if err := setDefaultValue(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// setDefaultValue checks the configuration.
func setDefaultValue(c *Config) error {
	if c.ConnectTimeout < 0 {
		c.ConnectTimeout = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if c.Services == nil {
		c.Services = make(map[string]string)
	}

	return nil
}

func GetOpenerSetting(c *Config) *OpenerSettings {
	header := make(http.Header, len(c.Headers))
	for k, v := range c.Headers {
		header.Add(k, v)
	}
	return &OpenerSettings{
		ConnectTimeout: time.Duration(c.ConnectTimeout) * time.Millisecond,
		Header:         header,
		Services:       c.Services,
	}
}

// NewOpener creates an opener, connecting one storager per configured service.
func NewOpener(s *OpenerSettings) (*urlconn.Opener, error) {
	storagers := make(map[string]types.Storager, len(s.Services))
	for scheme, connStr := range s.Services {
		storager, err := utils.NewStoragerFromString(connStr)
		if err != nil {
			return nil, err
		}
		// Schemes are matched lower case.
		storagers[strings.ToLower(scheme)] = storager
	}
	return &urlconn.Opener{
		Header:         s.Header,
		ConnectTimeout: s.ConnectTimeout,
		Storagers:      storagers,
	}, nil
}
