package log

import (
	"log/slog"
	"net/url"
	"strings"
)

const scrubbed = "xxx"

var sensitiveParams = []string{"key", "token", "secret", "password"}

// ScrubbedURL returns an attribute holding rawURL with its credentials
// (user info and secret-looking query parameters) masked.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	masked := u.JoinPath()

	if u.User != nil {
		masked.User = url.UserPassword(scrubbed, scrubbed)
	}

	if u.RawQuery != "" {
		query := u.Query()
		for param := range query {
			if isSensitiveParam(param) {
				query.Set(param, scrubbed)
			}
		}
		masked.RawQuery = query.Encode()
	}

	return slog.String(name, masked.String())
}

func isSensitiveParam(param string) bool {
	param = strings.ToLower(param)
	for _, s := range sensitiveParams {
		if strings.Contains(param, s) {
			return true
		}
	}
	return false
}
