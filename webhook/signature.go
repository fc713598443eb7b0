package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// SignatureHeader carries the request signature.
const SignatureHeader = "X-Mandrill-Signature"

// Sign computes the webhook signature: the base64 HMAC-SHA1, keyed with the
// webhook key, of the registered URL followed by every POST field name and
// value with names in sorted order.
func Sign(key, webhookURL string, form url.Values) string {
	var data strings.Builder
	data.WriteString(webhookURL)

	for _, k := range slices.Sorted(maps.Keys(form)) {
		for _, v := range form[k] {
			data.WriteString(k)
			data.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(data.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the form.
func Verify(key, webhookURL string, form url.Values, signature string) bool {
	expected := Sign(key, webhookURL, form)
	return hmac.Equal([]byte(expected), []byte(signature))
}
