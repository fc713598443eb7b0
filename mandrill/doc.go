// Package mandrill provides a client for the Mandrill transactional email API.
//
// Every endpoint is a JSON POST to {base}/{category}/{method}.json with the
// account API key injected into the request body. Results are returned as
// decoded JSON (Struct, Array or string); failures are returned as typed errors.
//
// # Usage
//
//	client, err := mandrill.New("") // key from MANDRILL_APIKEY or ~/.mandrill.key
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	info, err := client.Users.Info(ctx)
//
//	export, err := client.Exports.Activity(ctx, &mandrill.ExportsActivityOptions{
//		NotifyEmail: mandrill.String("ops@example.com"),
//		Tags:        []string{"password-reset"},
//	})
//
// Endpoints without a typed method can be reached through Client.Call.
//
// # Endpoint services
//
// The services on Client (Templates, Exports, Users, Rejects, Inbound, Tags,
// Messages, Whitelists, IPs, Internal, Subaccounts, URLs, Webhooks, Senders,
// Metadata) are generated from endpoints.yaml. Required parameters are
// positional; optional ones live in an Options struct where a nil field is
// sent as JSON null (or as the documented default).
//
// # Error Handling
//
// Errors fall into separate layers:
//
//   - *ConfigError: no API key could be resolved (matches ErrMissingAPIKey).
//   - *EncodingError: the parameters could not be serialized.
//   - *HTTPError: a transport failure (DNS, connect, TLS, timeout).
//   - *ResponseError: the body was not JSON, or an HTTP error body was not
//     a valid error envelope.
//   - *APIError: a named business error. Kind is resolved by LookupErrorKind;
//     unknown names resolve to KindGeneric.
//
// Use errors.Is with the sentinel of a kind:
//
//	if errors.Is(err, mandrill.ErrUnknownTemplate) {
//		// create it
//	}
//
// # Concurrency
//
// A Client holds a single HTTP session. Concurrent calls on one Client are
// safe but run one at a time.
package mandrill

//go:generate go run ../scripts/generate.go
