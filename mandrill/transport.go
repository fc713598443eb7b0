package mandrill

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

// rawResponse is the outcome of one HTTP exchange. Exactly one of
// transportErr or (statusCode, body) is meaningful.
type rawResponse struct {
	statusCode   int
	body         []byte
	transportErr error
}

// session owns the HTTP client and its single transport. Calls are
// serialized on mu so one Client never has two requests in flight.
type session struct {
	mu         sync.Mutex
	baseURL    string
	userAgent  string
	apiKey     string
	debug      bool
	logger     zerolog.Logger
	transport  *http.Transport
	httpClient *http.Client
}

func newSession(apiKey string, o *clientOptions) *session {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   o.connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	return &session{
		baseURL:   strings.TrimRight(o.baseURL, "/") + "/",
		userAgent: o.userAgent,
		apiKey:    apiKey,
		debug:     o.debug,
		logger:    o.logger,
		transport: transport,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   o.timeout,
		},
	}
}

// endpointURL returns the full URL of an endpoint path.
func (s *session) endpointURL(path string) string {
	return s.baseURL + path + ".json"
}

// execute POSTs body to the endpoint. Network failures are reported in
// rawResponse.transportErr, never as a returned error.
func (s *session) execute(ctx context.Context, path string, body []byte) rawResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := s.endpointURL(path)

	var log zerolog.Logger
	if s.debug {
		log = s.logger.With().
			Str("call_id", uuid.New().String()).
			Str("endpoint", path).
			Logger()
		log.Debug().Str("url", url).RawJSON("body", s.redact(body)).Msg("Call to Mandrill API")
		ctx = httptrace.WithClientTrace(ctx, traceTo(log))
	}

	start := time.Now()
	resp := s.roundTrip(ctx, url, body)
	elapsed := time.Since(start)

	if s.debug {
		event := log.Debug().
			Str("elapsed", elapsed.String()).
			Float64("elapsed_ms", float64(elapsed.Microseconds())/1000)
		if resp.transportErr != nil {
			event.Err(resp.transportErr).Msg("Mandrill API call failed")
		} else {
			event.Int("status", resp.statusCode).Bytes("response", resp.body).Msg("Got response")
		}
	}

	return resp
}

func (s *session) roundTrip(ctx context.Context, url string, body []byte) rawResponse {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return rawResponse{transportErr: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return rawResponse{transportErr: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawResponse{transportErr: err}
	}

	return rawResponse{statusCode: resp.StatusCode, body: data}
}

// redact hides the API key in logged request bodies. Only the top-level
// "key" member is replaced; the result is always valid JSON.
func (s *session) redact(body []byte) []byte {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return []byte(`"[unloggable body]"`)
	}
	if _, ok := payload["key"]; !ok {
		return body
	}
	payload["key"] = json.RawMessage(`"[redacted]"`)

	redacted, err := json.Marshal(payload)
	if err != nil {
		return []byte(`"[unloggable body]"`)
	}
	return redacted
}

// close releases pooled connections. The session stays usable; a later call dials again.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transport.CloseIdleConnections()
}

// traceTo emits connection-level events, the equivalent of a verbose transport log.
func traceTo(log zerolog.Logger) *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		DNSStart: func(info httptrace.DNSStartInfo) {
			log.Debug().Str("host", info.Host).Msg("DNS lookup")
		},
		DNSDone: func(info httptrace.DNSDoneInfo) {
			log.Debug().Err(info.Err).Int("addrs", len(info.Addrs)).Msg("DNS lookup done")
		},
		ConnectStart: func(network, addr string) {
			log.Debug().Str("network", network).Str("addr", addr).Msg("Connecting")
		},
		ConnectDone: func(network, addr string, err error) {
			log.Debug().Str("network", network).Str("addr", addr).Err(err).Msg("Connected")
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			log.Debug().Str("tls_version", tls.VersionName(state.Version)).Err(err).Msg("TLS handshake done")
		},
		GotConn: func(info httptrace.GotConnInfo) {
			log.Debug().Bool("reused", info.Reused).Bool("was_idle", info.WasIdle).Msg("Got connection")
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			log.Debug().Err(info.Err).Msg("Wrote request")
		},
	}
}
