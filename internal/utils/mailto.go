package utils

import (
	"net/url"
	"strings"
)

// ComposeMailto builds a mailto: link with a prefilled subject and body.
// Spaces are encoded as %20 since mail clients do not decode '+'.
func ComposeMailto(to, subject, body string) string {
	params := url.Values{}
	if subject != "" {
		params.Set("subject", subject)
	}
	if body != "" {
		params.Set("body", body)
	}

	link := "mailto:" + url.PathEscape(to)
	if encoded := params.Encode(); encoded != "" {
		link += "?" + strings.ReplaceAll(encoded, "+", "%20")
	}
	return link
}
