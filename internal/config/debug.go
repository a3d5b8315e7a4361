package config

import "github.com/goccy/go-yaml"

type Debug struct {
	Enabled     InterpolatedBool   `yaml:"enabled"`
	Prefix      InterpolatedString `yaml:"prefix"`
	AllowRemote InterpolatedBool   `yaml:"allowRemote"`
}

func NewDefaultDebugConfig() Debug {
	return Debug{
		Enabled:     false,
		Prefix:      "${LIBRARYMS_DEBUG_PREFIX:-/debug}",
		AllowRemote: false,
	}
}

func NewDebugConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":             []*yaml.Comment{yaml.HeadComment(" Runtime profiling endpoints (pprof, expvar)")},
		".enabled":     []*yaml.Comment{yaml.HeadComment(" Expose the profiling endpoints")},
		".allowRemote": []*yaml.Comment{yaml.HeadComment(" Serve non-loopback clients too")},
	}
}
