package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mandrill/config"
	"github.com/s0up4200/mandrill/mandrill"
)

type apiStub struct {
	mu       sync.Mutex
	requests map[string]map[string]any
}

// setupAPI points the package configuration at a stub server answering
// each path from replies.
func setupAPI(t *testing.T, replies map[string]string) *apiStub {
	t.Helper()

	stub := &apiStub{requests: make(map[string]map[string]any)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		assert.NoError(t, dec.Decode(&body))

		stub.mu.Lock()
		stub.requests[r.URL.Path] = body
		stub.mu.Unlock()

		reply, ok := replies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"status":"error","code":-1,"name":"ValidationError","message":"unexpected path"}`)
			return
		}
		io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)

	prevCfg, prevLogger, prevOutput := cfg, logger, outputFmt
	t.Cleanup(func() { cfg, logger, outputFmt = prevCfg, prevLogger, prevOutput })

	cfg = &config.Config{
		APIKey:         "cli-key",
		BaseURL:        server.URL,
		Timeout:        10 * time.Second,
		ConnectTimeout: time.Second,
		Filters:        config.FilterConfig{"bouncy": "hard_bounces > 0"},
	}
	logger = zerolog.Nop()
	outputFmt = "json"

	return stub
}

func (s *apiStub) request(path string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// runSubcommand runs a command registered on rootCmd without going through
// root flag parsing and config loading.
func runSubcommand(t *testing.T, cmd *cobra.Command, run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	t.Cleanup(func() { cmd.SetOut(nil) })
	err := run(cmd, args)
	return out.String(), err
}

func endpointCommand(t *testing.T, path string) *cobra.Command {
	t.Helper()
	endpoint, ok := mandrill.FindEndpoint(path)
	require.True(t, ok, path)
	cmd, err := newEndpointCommand(endpoint)
	require.NoError(t, err)
	return cmd
}

func TestEndpointCommandSendsFlags(t *testing.T) {
	stub := setupAPI(t, map[string]string{"/templates/add.json": `{"slug":"welcome"}`})

	out, err := runCommand(t, endpointCommand(t, "templates/add"),
		"--name", "welcome",
		"--from-email", "hi@example.com",
		"--labels", "a,b",
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug":"welcome"}`, out)

	body := stub.request("/templates/add.json")
	assert.Equal(t, "cli-key", body["key"])
	assert.Equal(t, "welcome", body["name"])
	assert.Equal(t, "hi@example.com", body["from_email"])
	assert.Equal(t, []any{"a", "b"}, body["labels"])
	assert.Equal(t, true, body["publish"], "unset flag with a default sends the default")
	assert.Contains(t, body, "subject")
	assert.Nil(t, body["subject"], "unset optional flag sends null")
}

func TestEndpointCommandRequiredFlag(t *testing.T) {
	setupAPI(t, nil)

	_, err := runCommand(t, endpointCommand(t, "templates/info"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestEndpointCommandJSONParams(t *testing.T) {
	stub := setupAPI(t, map[string]string{"/messages/send.json": `[{"email":"to@example.com","status":"sent"}]`})

	_, err := runCommand(t, endpointCommand(t, "messages/send"),
		"--message", `{"subject":"hi","to":[{"email":"to@example.com"}],"important":true}`,
		"--async",
	)
	require.NoError(t, err)

	body := stub.request("/messages/send.json")
	message := body["message"].(map[string]any)
	assert.Equal(t, "hi", message["subject"])
	assert.Equal(t, true, message["important"])
	assert.Equal(t, true, body["async"])

	_, err = runCommand(t, endpointCommand(t, "messages/send"), "--message", `[1,2]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON object")
}

func TestEndpointCommandIntParam(t *testing.T) {
	stub := setupAPI(t, map[string]string{"/webhooks/info.json": `{"id":7}`})

	_, err := runCommand(t, endpointCommand(t, "webhooks/info"), "--id", "7")
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), stub.request("/webhooks/info.json")["id"])
}

func TestEndpointCommandFilter(t *testing.T) {
	setupAPI(t, map[string]string{
		"/users/senders.json": `[{"address":"a@example.com","hard_bounces":0},{"address":"b@example.com","hard_bounces":4}]`,
	})

	out, err := runCommand(t, endpointCommand(t, "users/senders"), "--filter", "bouncy")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"address":"b@example.com","hard_bounces":4}]`, out)

	out, err = runCommand(t, endpointCommand(t, "users/senders"), "--filter", `hasPrefix(address, "a")`)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"address":"a@example.com","hard_bounces":0}]`, out)
}

func TestEndpointCommandAPIError(t *testing.T) {
	setupAPI(t, map[string]string{})

	_, err := runCommand(t, endpointCommand(t, "users/info"))
	require.Error(t, err)
	assert.ErrorIs(t, err, mandrill.ErrValidation)
}

func TestCallCommand(t *testing.T) {
	stub := setupAPI(t, map[string]string{"/users/ping.json": `"PONG!"`})

	out, err := runSubcommand(t, callCmd, runCall, "users/ping", `{"extra":1}`)
	require.NoError(t, err)
	assert.Equal(t, "\"PONG!\"\n", out)
	assert.Equal(t, json.Number("1"), stub.request("/users/ping.json")["extra"])

	_, err = runSubcommand(t, callCmd, runCall, "users/ping", `[1]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON object")
}

func TestCallCommandFilter(t *testing.T) {
	setupAPI(t, map[string]string{
		"/rejects/list.json": `[{"email":"a@example.com","reason":"hard-bounce"},{"email":"b@example.com","reason":"spam"}]`,
		"/users/ping.json":   `"PONG!"`,
	})

	prev := callFilter
	t.Cleanup(func() { callFilter = prev })

	callFilter = `reason == "spam"`
	out, err := runSubcommand(t, callCmd, runCall, "rejects/list")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"b@example.com","reason":"spam"}]`, out)

	_, err = runSubcommand(t, callCmd, runCall, "users/ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs an array result")
}

func TestEndpointCommandsRegisterRequiredFlags(t *testing.T) {
	cmd := endpointCommand(t, "templates/info")
	flag := cmd.Flags().Lookup("name")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
}

func TestReportFetchesConcurrently(t *testing.T) {
	setupAPI(t, map[string]string{
		"/users/info.json":      `{"username":"acme","reputation":90,"stats":{"today":{"sent":3}}}`,
		"/users/senders.json":   `[{"address":"a@example.com","sent":3}]`,
		"/tags/list.json":       `[{"tag":"welcome","sent":2,"reputation":80}]`,
		"/senders/domains.json": `[{"domain":"example.com","valid_signing":true}]`,
	})

	out, err := runSubcommand(t, reportCmd, runReport)
	require.NoError(t, err)

	var report accountReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "acme", report.Info["username"])
	assert.Len(t, report.Senders, 1)
	assert.Len(t, report.Tags, 1)
	assert.Len(t, report.Domains, 1)

	outputFmt = "pretty"
	out, err = runSubcommand(t, reportCmd, runReport)
	require.NoError(t, err)
	assert.Contains(t, out, "Account:    acme")
	assert.Contains(t, out, "welcome")
	assert.Contains(t, out, "example.com")
}

func TestReportFailsOnAnyError(t *testing.T) {
	setupAPI(t, map[string]string{
		"/users/info.json":    `{"username":"acme"}`,
		"/users/senders.json": `[]`,
		"/tags/list.json":     `[]`,
	})

	_, err := runSubcommand(t, reportCmd, runReport)
	require.Error(t, err)
	assert.True(t, mandrill.IsKind(err, mandrill.KindValidationError))
}

func TestParamsFromFlagsDefaults(t *testing.T) {
	endpoint, ok := mandrill.FindEndpoint("rejects/list")
	require.True(t, ok)

	cmd, err := newEndpointCommand(endpoint)
	require.NoError(t, err)
	require.NoError(t, cmd.Flags().Parse([]string{"--email", "x@example.com"}))

	params, err := paramsFromFlags(cmd.Flags(), endpoint.Params)
	require.NoError(t, err)
	assert.Equal(t, mandrill.Params{
		"email":           "x@example.com",
		"include_expired": false,
		"subaccount":      nil,
	}, params)
}

func TestPrintResult(t *testing.T) {
	prev := outputFmt
	t.Cleanup(func() { outputFmt = prev })

	var buf bytes.Buffer
	outputFmt = "pretty"
	require.NoError(t, printResult(&buf, "PONG!"))
	assert.Equal(t, "PONG!\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, map[string]any{"a": json.Number("1.50"), "b": "<x>"}))
	assert.Equal(t, "{\n  \"a\": 1.50,\n  \"b\": \"<x>\"\n}\n", buf.String())

	buf.Reset()
	outputFmt = "json"
	require.NoError(t, printResult(&buf, []any{json.Number("2")}))
	assert.Equal(t, "[2]\n", buf.String())
}

func TestEveryCategoryHasACommand(t *testing.T) {
	categories, err := mandrill.Catalog()
	require.NoError(t, err)

	for _, category := range categories {
		if len(category.Endpoints) == 0 {
			continue
		}
		group, _, err := rootCmd.Find([]string{category.Name})
		require.NoError(t, err, category.Name)
		assert.Equal(t, category.Name, group.Name())
		assert.Len(t, group.Commands(), len(category.Endpoints), category.Name)
	}
}
