package config

import "github.com/goccy/go-yaml"

type HTTP struct {
	Address InterpolatedString `yaml:"address"`
	BaseURL InterpolatedString `yaml:"baseUrl"`
	Session Session            `yaml:"session"`
}

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString `yaml:"path"`
	HTTPOnly InterpolatedBool   `yaml:"httpOnly"`
	Secure   InterpolatedBool   `yaml:"secure"`
	MaxAge   *InterpolatedInt   `yaml:"maxAge"`
}

func NewDefaultHTTPConfig() HTTP {
	maxAge := InterpolatedInt(60 * 60 * 24)

	return HTTP{
		Address: "${LIBRARYMS_HTTP_ADDRESS:-:8080}",
		BaseURL: "${LIBRARYMS_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Name: "${LIBRARYMS_HTTP_SESSION_NAME:-libraryms_ui}",
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   &maxAge,
			},
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL of the application")},
		".session":               []*yaml.Comment{yaml.HeadComment(" UI session configuration", " The session carries the navigation bar state (open panels, search query)")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Cookie signing keys", " A random key is generated at startup when empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Cookie lifetime in seconds")},
	}
}
