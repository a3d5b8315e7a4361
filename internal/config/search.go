package config

import (
	"fmt"

	"github.com/bornholm/libraryms/pkg/search"
	"github.com/bornholm/libraryms/pkg/search/local"
	"github.com/goccy/go-yaml"
)

type Search struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
	Rate    InterpolatedFloat  `yaml:"rate"`
	Burst   InterpolatedInt    `yaml:"burst"`
}

func NewDefaultSearchConfig() Search {
	return Search{
		Type: InterpolatedString(fmt.Sprintf("${LIBRARYMS_SEARCH_TYPE:-%s}", local.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"path":  "${LIBRARYMS_SEARCH_PATH:-/search}",
				"param": "q",
			},
		},
		Rate:  5,
		Burst: 10,
	}
}

func NewSearchConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Search submission configuration")},
		".type":    []*yaml.Comment{yaml.HeadComment(" Search results resolver", fmt.Sprintf(" Available: %v", search.Registered()))},
		".options": []*yaml.Comment{yaml.HeadComment(" Resolver options"), yaml.FootComment("External resolver", "options:", "  url: https://catalog.example.org/search", "  param: q")},
		".rate":    []*yaml.Comment{yaml.HeadComment(" Allowed submissions per second and per client address (0 disables the limit)")},
		".burst":   []*yaml.Comment{yaml.HeadComment(" Maximum submission burst per client address")},
	}
}
