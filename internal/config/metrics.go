package config

import "github.com/goccy/go-yaml"

type Metrics struct {
	Enabled InterpolatedBool   `yaml:"enabled"`
	Path    InterpolatedString `yaml:"path"`
}

func NewDefaultMetricsConfig() Metrics {
	return Metrics{
		Enabled: true,
		Path:    "${LIBRARYMS_METRICS_PATH:-/metrics}",
	}
}

func NewMetricsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Prometheus metrics configuration")},
		".enabled": []*yaml.Comment{yaml.HeadComment(" Expose the metrics endpoint")},
	}
}
