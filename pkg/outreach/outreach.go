// Package outreach builds contact deep links (mailto, WhatsApp, tel) for
// reaching suppliers about a request.
package outreach

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D+`)

// MailtoLink builds a mailto URL with the subject and body query-escaped
func MailtoLink(email, subject, body string) string {
	return "mailto:" + email + "?subject=" + url.QueryEscape(subject) + "&body=" + url.QueryEscape(body)
}

// WhatsAppLink builds a wa.me URL for the number with the message prefilled.
// Non-digits are stripped and a leading 0 is replaced with the UK country
// code.
func WhatsAppLink(number, text string) string {
	digits := nonDigits.ReplaceAllString(number, "")
	if strings.HasPrefix(digits, "0") {
		digits = "44" + digits[1:]
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// TelLink builds a tel URL for the raw phone number
func TelLink(phone string) string {
	return "tel:" + phone
}
