package config

import "github.com/goccy/go-yaml"

type Finance struct {
	PendingFines InterpolatedInt    `yaml:"pendingFines"`
	TotalRevenue InterpolatedInt    `yaml:"totalRevenue"`
	Locale       InterpolatedString `yaml:"locale"`
	Symbol       InterpolatedString `yaml:"symbol"`
}

func NewDefaultFinanceConfig() Finance {
	return Finance{
		PendingFines: 3,
		TotalRevenue: 12450,
		Locale:       "${LIBRARYMS_FINANCE_LOCALE:-en-US}",
		Symbol:       "${LIBRARYMS_FINANCE_SYMBOL}",
	}
}

func NewFinanceConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":              []*yaml.Comment{yaml.HeadComment(" Finance figures displayed by the navigation bar")},
		".pendingFines": []*yaml.Comment{yaml.HeadComment(" Number of pending fines (badge hidden when 0)")},
		".totalRevenue": []*yaml.Comment{yaml.HeadComment(" Total revenue, in whole currency units")},
		".locale":       []*yaml.Comment{yaml.HeadComment(" BCP 47 locale used to format amounts")},
		".symbol":       []*yaml.Comment{yaml.HeadComment(" Currency symbol (defaults to '$' when empty)")},
	}
}
