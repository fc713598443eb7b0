package mandrill

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
)

const (
	msgUndecodable     = "We were unable to decode the JSON response from the Mandrill API"
	msgUnexpectedError = "We received an unexpected error"
)

// Call invokes an endpoint (e.g. "users/info") with params and returns the
// decoded JSON result. The API key is added to a copy of params; the caller's
// map is not modified.
//
// Numbers in the result are json.Number values.
func (c *Client) Call(ctx context.Context, path string, params Params) (any, error) {
	payload := make(Params, len(params)+1)
	maps.Copy(payload, params)
	payload["key"] = c.apiKey

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &EncodingError{Path: path, Err: err}
	}

	resp := c.session.execute(ctx, path, body)
	if resp.transportErr != nil {
		return nil, &HTTPError{Path: path, Err: resp.transportErr}
	}

	result, err := decodeJSON(resp.body)
	if err != nil {
		return nil, &ResponseError{
			StatusCode: resp.statusCode,
			Body:       string(resp.body),
			Message:    msgUndecodable,
		}
	}

	if resp.statusCode/100 >= 4 {
		return nil, castError(resp.statusCode, resp.body, result)
	}

	return result, nil
}

// CallStruct invokes an endpoint whose result is a JSON object.
func (c *Client) CallStruct(ctx context.Context, path string, params Params) (Struct, error) {
	return callAs[Struct](ctx, c, path, params)
}

// CallArray invokes an endpoint whose result is a JSON array.
func (c *Client) CallArray(ctx context.Context, path string, params Params) (Array, error) {
	return callAs[Array](ctx, c, path, params)
}

// CallString invokes an endpoint whose result is a JSON string.
func (c *Client) CallString(ctx context.Context, path string, params Params) (string, error) {
	return callAs[string](ctx, c, path, params)
}

// CallBool invokes an endpoint whose result is a JSON boolean.
func (c *Client) CallBool(ctx context.Context, path string, params Params) (bool, error) {
	return callAs[bool](ctx, c, path, params)
}

// CallInto invokes an endpoint and decodes its result into out, which
// must be a pointer to a type the result can be unmarshaled into.
func (c *Client) CallInto(ctx context.Context, path string, params Params, out any) error {
	result, err := c.Call(ctx, path, params)
	if err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to re-encode %s result: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s result into %T: %w", path, out, err)
	}
	return nil
}

func callAs[T any](ctx context.Context, c *Client, path string, params Params) (T, error) {
	var zero T

	result, err := c.Call(ctx, path, params)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		data, _ := json.Marshal(result)
		return zero, &ResponseError{
			Body:    string(data),
			Message: fmt.Sprintf("unexpected %T result from %s", result, path),
		}
	}
	return typed, nil
}

// decodeJSON decodes exactly one JSON value. Empty bodies, trailing data and
// a bare null are all rejected.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	if v == nil {
		return nil, fmt.Errorf("null JSON value")
	}
	return v, nil
}

// castError turns a decoded HTTP error body into an *APIError, or into a
// *ResponseError when the body is not a valid error envelope.
func castError(statusCode int, body []byte, result any) error {
	envelope, ok := result.(map[string]any)
	status, _ := envelope["status"].(string)
	name, _ := envelope["name"].(string)

	if !ok || status != "error" || name == "" {
		return &ResponseError{
			StatusCode: statusCode,
			Body:       string(bytes.TrimSpace(body)),
			Message:    msgUnexpectedError,
		}
	}

	message, _ := envelope["message"].(string)
	return &APIError{
		Kind:       LookupErrorKind(name),
		Name:       name,
		Code:       envelopeCode(envelope["code"]),
		Message:    message,
		StatusCode: statusCode,
	}
}

func envelopeCode(v any) int {
	switch code := v.(type) {
	case json.Number:
		if n, err := code.Int64(); err == nil {
			return int(n)
		}
		if f, err := code.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(code)
	}
	return 0
}
