package navigation

import (
	"fmt"
	"log/slog"

	"github.com/bornholm/libraryms/pkg/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrencyLocale = "en-US"
	DefaultCurrencySymbol = "$"
)

// LocalizeFunc renders amount as a zero-decimal, locale-grouped number.
type LocalizeFunc func(tag language.Tag, amount int64) (string, error)

func LocalizeNumber(tag language.Tag, amount int64) (string, error) {
	printer := message.NewPrinter(tag)
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0))), nil
}

type CurrencyFormatter struct {
	Locale   string
	Symbol   string
	Localize LocalizeFunc
}

// Format returns amount as a localized currency string. Formatting
// failures fall back to the symbol followed by the comma-grouped amount.
func (f *CurrencyFormatter) Format(amount int64) string {
	formatted, err := f.localize(amount)
	if err != nil {
		slog.Error("could not format currency", log.Error(errors.WithStack(err)), slog.Int64("amount", amount))
		return f.fallback(amount)
	}

	return formatted
}

func (f *CurrencyFormatter) localize(amount int64) (formatted string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("localize panicked: %v", r)
		}
	}()

	locale := f.Locale
	if locale == "" {
		locale = DefaultCurrencyLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse locale '%s'", locale)
	}

	localize := f.Localize
	if localize == nil {
		localize = LocalizeNumber
	}

	localized, err := localize(tag, amount)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%s%s", f.symbol(), localized), nil
}

func (f *CurrencyFormatter) fallback(amount int64) string {
	return f.symbol() + humanize.Comma(amount)
}

func (f *CurrencyFormatter) symbol() string {
	if f.Symbol == "" {
		return DefaultCurrencySymbol
	}

	return f.Symbol
}

// FormatCurrency formats amount with the default locale and symbol.
func FormatCurrency(amount int64) string {
	formatter := NewCurrencyFormatter(DefaultCurrencyLocale, DefaultCurrencySymbol)
	return formatter.Format(amount)
}

func NewCurrencyFormatter(locale string, symbol string) *CurrencyFormatter {
	return &CurrencyFormatter{
		Locale: locale,
		Symbol: symbol,
	}
}
