package whatsapp

import (
	"net/url"
	"strings"
)

const (
	DefaultHost        = "wa.me"
	DefaultCountryCode = "55"
)

// Dispatcher builds click-to-chat links. It has no side effects; opening the link is
// left to the client.
type Dispatcher struct {
	Host        string
	CountryCode string
}

func NewDispatcher(countryCode string) Dispatcher {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return Dispatcher{Host: DefaultHost, CountryCode: digitsOnly(countryCode)}
}

var defaultDispatcher = NewDispatcher(DefaultCountryCode)

func BuildDeepLink(rawPhone, message string) string {
	return defaultDispatcher.BuildDeepLink(rawPhone, message)
}

// BuildDeepLink returns https://<host>/<phone>?text=<message>, with the phone normalized
// by NormalizePhone and the message percent-encoded.
func (d Dispatcher) BuildDeepLink(rawPhone, message string) string {
	host := d.Host
	if host == "" {
		host = DefaultHost
	}
	return "https://" + host + "/" + d.NormalizePhone(rawPhone) + "?text=" + encodeComponent(message)
}

// NormalizePhone strips every non-digit and prefixes the country code unless the number
// already starts with it. Applying it twice gives the same result as applying it once.
func (d Dispatcher) NormalizePhone(raw string) string {
	digits := digitsOnly(raw)
	if strings.HasPrefix(digits, d.CountryCode) {
		return digits
	}
	return d.CountryCode + digits
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent escapes like a URI component: spaces become %20, never '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
