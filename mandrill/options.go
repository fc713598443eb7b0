package mandrill

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultBaseURL is the root of the versioned Mandrill API.
	DefaultBaseURL = "https://mandrillapp.com/api/1.0/"

	defaultConnectTimeout = 30 * time.Second
	defaultTimeout        = 600 * time.Second
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL        string
	debug          bool
	logger         zerolog.Logger
	userAgent      string
	connectTimeout time.Duration
	timeout        time.Duration
	fs             afero.Fs
	keyFiles       []string
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:        DefaultBaseURL,
		logger:         zerolog.Nop(),
		userAgent:      "Mandrill-Go/" + Version,
		connectTimeout: defaultConnectTimeout,
		timeout:        defaultTimeout,
		fs:             afero.NewOsFs(),
		keyFiles:       DefaultKeyFiles(),
	}
}

// WithBaseURL sets the API root. A trailing slash is added if missing.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithDebug enables logging of request bodies, transport events, timings
// and response bodies to the configured logger.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// WithLogger sets the logging sink used in debug mode.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithConnectTimeout sets the dial timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.connectTimeout = timeout
		}
	}
}

// WithTimeout sets the total time limit of a single call.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithFs sets the filesystem key files are read from.
func WithFs(fs afero.Fs) Option {
	return func(o *clientOptions) {
		o.fs = fs
	}
}

// WithKeyFiles replaces the well-known key file locations.
func WithKeyFiles(paths ...string) Option {
	return func(o *clientOptions) {
		o.keyFiles = paths
	}
}
