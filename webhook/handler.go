package webhook

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds the size of one webhook batch.
const maxBodyBytes = 32 << 20

// Config configures the receiver.
type Config struct {
	// Key is the webhook authentication key. Empty disables signature checks.
	Key string
	// URL is the exact URL registered with Mandrill; it is part of the signed data.
	URL string
	// Path is the route served, "/" when empty.
	Path string
}

// Sink receives every decoded event, in batch order.
type Sink func(Event)

type handler struct {
	cfg    Config
	logger zerolog.Logger
	sink   Sink
}

// NewHandler creates the receiver router. HEAD answers Mandrill's URL check;
// POST verifies the signature and hands each event to sink.
func NewHandler(cfg Config, logger zerolog.Logger, sink Sink) *mux.Router {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	h := &handler{cfg: cfg, logger: logger, sink: sink}

	r := mux.NewRouter()
	r.Use(h.recovery)
	r.Use(h.logging)

	r.HandleFunc(cfg.Path, h.check).Methods(http.MethodHead, http.MethodGet)
	r.HandleFunc(cfg.Path, h.receive).Methods(http.MethodPost)

	return r
}

func (h *handler) check(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *handler) receive(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	if h.cfg.Key != "" {
		signature := r.Header.Get(SignatureHeader)
		if signature == "" || !Verify(h.cfg.Key, h.cfg.URL, r.PostForm, signature) {
			h.logger.Warn().Str("remote", r.RemoteAddr).Msg("Rejected webhook with bad signature")
			respondError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
	}

	payload := r.PostForm.Get(FormField)
	if payload == "" {
		respondError(w, http.StatusBadRequest, "missing "+FormField)
		return
	}

	events, err := ParseEvents(payload)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Rejected webhook with bad payload")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, event := range events {
		h.sink(event)
	}

	h.logger.Debug().Int("events", len(events)).Msg("Received webhook batch")
	w.WriteHeader(http.StatusOK)
}

func (h *handler) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.logger.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("Webhook handler panicked")
				respondError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *handler) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Webhook request")
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
