// Package notify composes WhatsApp click-to-chat URLs. The service only
// builds the URL; opening the chat is the client's job.
package notify

import (
	"net/url"
	"strings"
)

// EncodeMessage percent-encodes text for a wa.me text parameter. Spaces
// become %20, not +, matching how browsers encode chat payloads.
func EncodeMessage(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ClickToChatURL builds a wa.me link for the destination number carrying
// the pre-formatted message.
func ClickToChatURL(number, text string) string {
	return "https://wa.me/" + number + "?text=" + EncodeMessage(text)
}
