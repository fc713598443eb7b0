package mandrill

import (
	"github.com/rs/zerolog"
)

// Client is a Mandrill API client. It owns one HTTP session that is
// reused by every call. Calls are serialized per Client.
type Client struct {
	services

	apiKey  string
	session *session
	logger  zerolog.Logger
}

// New creates a new Mandrill client.
//
// If apiKey is empty the key is taken from the MANDRILL_APIKEY environment
// variable, then from ~/.mandrill.key or /etc/mandrill.key. A *ConfigError
// (matching ErrMissingAPIKey) is returned when none of these yield a key.
func New(apiKey string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	key, source, err := resolveAPIKey(apiKey, o.fs, o.keyFiles)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiKey:  key,
		session: newSession(key, o),
		logger:  o.logger,
	}
	c.initServices()

	if o.debug {
		c.logger.Debug().
			Str("base_url", c.session.baseURL).
			Str("key_source", source).
			Msg("Created Mandrill client")
	}

	return c, nil
}

// BaseURL returns the normalized API root, always ending in a single slash.
func (c *Client) BaseURL() string {
	return c.session.baseURL
}

// Close releases the connections held by the client's session.
func (c *Client) Close() error {
	c.session.close()
	return nil
}
