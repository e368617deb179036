// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/superior-limousine/website/internal/web/navigation"
)

const (
	// EnvConfigJSON is the environment variable holding a JSON config override.
	EnvConfigJSON = "SUPERIOR_LIMO_CONFIG_JSON"

	defaultShutDownTime    = 5
	defaultCheckAliveURI   = "/checkalive"
	defaultMarqueeRepeat   = 3
	defaultMarqueeDuration = 10 * time.Second
)

var validate = validator.New() //nolint:gochecknoglobals

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validateConfig(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validateConfig checks the minimal settings and fills in defaults.
func validateConfig(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if err := validate.Struct(c.Nav); err != nil {
		return errors.Wrap(ErrInvalidNavLink, err.Error())
	}

	setDefaults(c)

	return nil
}

func setDefaults(c *Config) {
	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.CheckAliveURI == "" {
		c.Webserver.CheckAliveURI = defaultCheckAliveURI
	}

	if c.Brand.MarqueeRepeat == 0 {
		c.Brand.MarqueeRepeat = defaultMarqueeRepeat
	}

	if c.Brand.MarqueeDuration == 0 {
		c.Brand.MarqueeDuration = defaultMarqueeDuration
	}

	if len(c.Nav.Links) == 0 {
		c.Nav.Links = make([]navigation.Link, len(navigation.DefaultLinks))
		copy(c.Nav.Links, navigation.DefaultLinks)
	}
}
