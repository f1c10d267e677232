// Package i18n handles the storefront's bilingual surface: English/Arabic
// language negotiation and locale-aware price formatting.
package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English, // default
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// Match negotiates the response language from an Accept-Language header.
// Anything unrecognized falls back to English.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	tag, _, _ := matcher.Match(tags...)
	return tag
}

// Direction returns the writing direction for layout hints: "rtl" for Arabic.
func Direction(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "ar" {
		return "rtl"
	}
	return "ltr"
}

// Code returns the two-letter language code stored on bookings and inquiries.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Pick chooses the localized variant of a CMS text field, falling back to
// English when the Arabic translation is missing.
func Pick(tag language.Tag, en, ar string) string {
	if Code(tag) == "ar" && ar != "" {
		return ar
	}
	return en
}

// FormatPrice renders a currency amount for the negotiated locale, e.g.
// "AED 189,000.00" / "‏189,000.00 د.إ.‏".
func FormatPrice(tag language.Tag, code string, amount float64) string {
	p := message.NewPrinter(tag)
	unit, err := currency.ParseISO(code)
	if err != nil {
		return p.Sprintf("%.2f", amount)
	}
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
