package config

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `yaml:"logger"`
	HTTP    HTTP    `yaml:"http"`
	Finance Finance `yaml:"finance"`
	Search  Search  `yaml:"search"`
	Metrics Metrics `yaml:"metrics"`
	Debug   Debug   `yaml:"debug"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Logger:  NewDefaultLoggerConfig(),
		HTTP:    NewDefaultHTTPConfig(),
		Finance: NewDefaultFinanceConfig(),
		Search:  NewDefaultSearchConfig(),
		Metrics: NewDefaultMetricsConfig(),
		Debug:   NewDefaultDebugConfig(),
	}
}

func Interpolate(conf *Config) error {
	var buff bytes.Buffer

	if err := Dump(&buff, conf); err != nil {
		return errors.WithStack(err)
	}

	if err := Load(&buff, conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func LoadFile(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	if err := Load(file, conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func Load(r io.Reader, conf *Config) error {
	decoder := yaml.NewDecoder(r)

	if err := decoder.Decode(conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var sections = map[string]yaml.CommentMap{
	"$.http":    NewHTTPConfigCommentMap(),
	"$.logger":  NewLoggerConfigCommentMap(),
	"$.finance": NewFinanceConfigCommentMap(),
	"$.search":  NewSearchConfigCommentMap(),
	"$.metrics": NewMetricsConfigCommentMap(),
	"$.debug":   NewDebugConfigCommentMap(),
}

func Dump(w io.Writer, conf *Config) error {
	configComments := yaml.CommentMap{}
	for configSelector, sectionComments := range sections {
		for sectionSelector, sectionComments := range sectionComments {
			configComments[configSelector+sectionSelector] = sectionComments
		}
	}

	encoder := yaml.NewEncoder(w, yaml.WithComment(configComments))
	defer encoder.Close()

	if err := encoder.Encode(conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var ErrInvalid = errors.New("invalid configuration")

// Validate checks the interpolated configuration for values the
// application cannot start with.
func Validate(conf *Config) error {
	switch string(conf.Logger.Format) {
	case LoggerFormatText, LoggerFormatJSON:
	default:
		return errors.Wrapf(ErrInvalid, "unknown logger format '%s'", conf.Logger.Format)
	}

	if conf.Finance.PendingFines < 0 {
		return errors.Wrapf(ErrInvalid, "finance.pendingFines must not be negative, got %d", conf.Finance.PendingFines)
	}

	if conf.Search.Rate < 0 {
		return errors.Wrapf(ErrInvalid, "search.rate must not be negative, got %v", conf.Search.Rate)
	}

	if conf.Search.Rate > 0 && conf.Search.Burst < 1 {
		return errors.Wrapf(ErrInvalid, "search.burst must be at least 1 when search.rate is set, got %d", conf.Search.Burst)
	}

	return nil
}
