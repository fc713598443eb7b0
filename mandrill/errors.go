package mandrill

import (
	"errors"
	"fmt"
)

// Common errors that can be checked with errors.Is.
var (
	// ErrMissingAPIKey indicates no API key could be resolved.
	ErrMissingAPIKey = errors.New("you must provide a Mandrill API key")

	// ErrGeneric matches API errors whose name is not a known error kind.
	ErrGeneric = errors.New("mandrill API error")

	ErrValidation                = errors.New("validation error")
	ErrInvalidKey                = errors.New("invalid API key")
	ErrPaymentRequired           = errors.New("payment required")
	ErrUnknownSubaccount         = errors.New("unknown subaccount")
	ErrUnknownTemplate           = errors.New("unknown template")
	ErrServiceUnavailable        = errors.New("service unavailable")
	ErrUnknownMessage            = errors.New("unknown message")
	ErrInvalidTagName            = errors.New("invalid tag name")
	ErrInvalidReject             = errors.New("invalid reject")
	ErrUnknownSender             = errors.New("unknown sender")
	ErrUnknownURL                = errors.New("unknown url")
	ErrUnknownTrackingDomain     = errors.New("unknown tracking domain")
	ErrInvalidTemplate           = errors.New("invalid template")
	ErrUnknownWebhook            = errors.New("unknown webhook")
	ErrUnknownInboundDomain      = errors.New("unknown inbound domain")
	ErrUnknownInboundRoute       = errors.New("unknown inbound route")
	ErrUnknownExport             = errors.New("unknown export")
	ErrIPProvisionLimit          = errors.New("ip provision limit reached")
	ErrUnknownPool               = errors.New("unknown pool")
	ErrNoSendingHistory          = errors.New("no sending history")
	ErrPoorReputation            = errors.New("poor reputation")
	ErrUnknownIP                 = errors.New("unknown ip")
	ErrInvalidEmptyDefaultPool   = errors.New("default pool cannot be empty")
	ErrInvalidDeleteDefaultPool  = errors.New("default pool cannot be deleted")
	ErrInvalidDeleteNonEmptyPool = errors.New("non-empty pool cannot be deleted")
	ErrInvalidCustomDNS          = errors.New("invalid custom dns")
	ErrInvalidCustomDNSPending   = errors.New("custom dns change pending")
	ErrMetadataFieldLimit        = errors.New("metadata field limit reached")
	ErrUnknownMetadataField      = errors.New("unknown metadata field")
)

// ConfigError is returned by New when the client cannot be configured.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mandrill configuration error: %s", e.Reason)
}

// Is matches ErrMissingAPIKey.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingAPIKey
}

// EncodingError indicates the request parameters could not be serialized.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode parameters for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// HTTPError represents a transport-level failure (DNS, connect, TLS, timeout).
// The call never reached a decodable response.
type HTTPError struct {
	Path string
	Err  error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API call to %s failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ResponseError is returned when a response body cannot be interpreted:
// it is not JSON, or it is an HTTP error whose body is not an error envelope.
type ResponseError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Body)
}

// APIError is a business error reported by the Mandrill API.
type APIError struct {
	Kind       ErrorKind
	Name       string
	Code       int
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mandrill %s (code %d): %s", e.Kind, e.Code, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// IsKind reports whether err is an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
