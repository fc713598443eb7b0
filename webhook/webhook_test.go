package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "hook-secret"
	testURL = "https://hooks.example.com/mandrill"
)

const batch = `[
	{"event":"send","_id":"m1","ts":1365109999,"msg":{"email":"to@example.com","state":"sent","opens":[]}},
	{"event":"open","_id":"m1","ts":1365111111.5,"msg":{"email":"to@example.com"}},
	{"type":"blacklist","action":"add","ts":1365112222,"reject":{"email":"bad@example.com"}}
]`

func TestSign(t *testing.T) {
	form := url.Values{
		"mandrill_events": {"[]"},
		"b_field":         {"2"},
		"a_field":         {"1"},
	}

	sig := Sign(testKey, testURL, form)
	assert.NotEmpty(t, sig)
	assert.Equal(t, sig, Sign(testKey, testURL, form), "signature must be deterministic")

	// Field order in the signed data is sorted by name.
	expected := Sign(testKey, testURL+"a_field1b_field2mandrill_events[]", url.Values{})
	assert.Equal(t, expected, sig)

	assert.True(t, Verify(testKey, testURL, form, sig))
	assert.False(t, Verify("other-key", testURL, form, sig))
	assert.False(t, Verify(testKey, testURL+"/other", form, sig))
	assert.False(t, Verify(testKey, testURL, form, ""))
}

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents(batch)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "send", events[0].Kind())
	assert.Equal(t, "m1", events[0].ID)
	assert.Equal(t, time.Unix(1365109999, 0).UTC(), events[0].Timestamp)
	assert.Equal(t, "to@example.com", events[0].Msg["email"])
	assert.Contains(t, string(events[0].Raw), `"_id":"m1"`)

	assert.Equal(t, time.Unix(1365111111, 0).UTC(), events[1].Timestamp)

	assert.Equal(t, "sync:blacklist", events[2].Kind())
	assert.Equal(t, "add", events[2].Action)
	assert.Equal(t, "bad@example.com", events[2].Reject["email"])

	_, err = ParseEvents(`{"event":"send"}`)
	assert.Error(t, err)
	_, err = ParseEvents(`not json`)
	assert.Error(t, err)
	_, err = ParseEvents(`[{"ts":"yesterday"}]`)
	assert.Error(t, err)
}

func newTestHandler(t *testing.T, cfg Config) (http.Handler, *[]Event) {
	t.Helper()
	var received []Event
	return NewHandler(cfg, zerolog.Nop(), func(e Event) {
		received = append(received, e)
	}), &received
}

func post(t *testing.T, h http.Handler, path string, form url.Values, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerURLCheck(t *testing.T) {
	h, received := newTestHandler(t, Config{Key: testKey, URL: testURL})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, *received)
}

func TestHandlerReceive(t *testing.T) {
	form := url.Values{FormField: {batch}}

	tests := []struct {
		name       string
		cfg        Config
		form       url.Values
		signature  string
		wantStatus int
		wantEvents int
	}{
		{
			name:       "valid signature",
			cfg:        Config{Key: testKey, URL: testURL},
			form:       form,
			signature:  Sign(testKey, testURL, form),
			wantStatus: http.StatusOK,
			wantEvents: 3,
		},
		{
			name:       "bad signature",
			cfg:        Config{Key: testKey, URL: testURL},
			form:       form,
			signature:  Sign("wrong", testURL, form),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing signature",
			cfg:        Config{Key: testKey, URL: testURL},
			form:       form,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no key configured",
			cfg:        Config{},
			form:       form,
			wantStatus: http.StatusOK,
			wantEvents: 3,
		},
		{
			name:       "missing events field",
			cfg:        Config{},
			form:       url.Values{"other": {"x"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad payload",
			cfg:        Config{},
			form:       url.Values{FormField: {"{"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, received := newTestHandler(t, tt.cfg)

			rec := post(t, h, "/", tt.form, tt.signature)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, *received, tt.wantEvents)

			if rec.Code != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestHandlerCustomPath(t *testing.T) {
	h, received := newTestHandler(t, Config{Path: "/hooks/mandrill"})

	rec := post(t, h, "/", url.Values{FormField: {batch}}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = post(t, h, "/hooks/mandrill", url.Values{FormField: {batch}}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, *received, 3)
}

func TestHandlerRecoversFromSinkPanic(t *testing.T) {
	h := NewHandler(Config{}, zerolog.Nop(), func(Event) { panic("boom") })

	rec := post(t, h, "/", url.Values{FormField: {batch}}, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
