package mandrill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	categories, err := Catalog()
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"templates", "exports", "users", "rejects", "inbound", "tags", "messages", "whitelists",
		"ips", "internal", "subaccounts", "urls", "webhooks", "senders", "metadata",
	}, names)

	ping, ok := FindEndpoint("users/ping")
	require.True(t, ok)
	assert.Equal(t, ReturnsString, ping.Returns)
	assert.Equal(t, "ping", ping.Method())

	addDomain, ok := FindEndpoint("inbound/add-domain")
	require.True(t, ok)
	assert.Equal(t, "add-domain", addDomain.Method())
	require.Len(t, addDomain.Params, 1)
	assert.Equal(t, Param{Name: "domain", Type: TypeString, Required: true}, addDomain.Params[0])

	_, ok = FindEndpoint("users/nope")
	assert.False(t, ok)
}

func TestCatalogDefaults(t *testing.T) {
	add, ok := FindEndpoint("templates/add")
	require.True(t, ok)

	defaults := make(map[string]any)
	for _, p := range add.Params {
		if p.HasDefault() {
			defaults[p.Name] = p.Default
		}
	}
	assert.Equal(t, true, defaults["publish"])
	assert.Equal(t, []any{}, defaults["labels"])
	assert.NotContains(t, defaults, "subject")
}

func TestParseCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "valid",
			doc: `
categories:
  - name: users
    endpoints:
      - path: users/info
        returns: struct
`,
		},
		{
			name:    "bad yaml",
			doc:     "categories: [",
			wantErr: "failed to parse",
		},
		{
			name: "endpoint outside category",
			doc: `
categories:
  - name: users
    endpoints:
      - path: tags/list
        returns: array
`,
			wantErr: "not under category",
		},
		{
			name: "duplicate endpoint",
			doc: `
categories:
  - name: users
    endpoints:
      - path: users/info
        returns: struct
      - path: users/info
        returns: struct
`,
			wantErr: "duplicate endpoint",
		},
		{
			name: "unknown return shape",
			doc: `
categories:
  - name: users
    endpoints:
      - path: users/info
        returns: blob
`,
			wantErr: "unknown return shape",
		},
		{
			name: "unknown param type",
			doc: `
categories:
  - name: users
    endpoints:
      - path: users/info
        returns: struct
        params:
          - {name: x, type: float}
`,
			wantErr: "unknown type",
		},
		{
			name: "required after optional",
			doc: `
categories:
  - name: tags
    endpoints:
      - path: tags/info
        returns: struct
        params:
          - {name: a, type: string}
          - {name: b, type: string, required: true}
`,
			wantErr: "follows an optional one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
