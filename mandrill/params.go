package mandrill

// Params is the parameter mapping of one endpoint call, keyed by remote field name.
// Values may be strings, numbers, booleans, nil, slices or nested maps.
type Params map[string]any

// Struct is a decoded JSON object result.
type Struct = map[string]any

// Array is a decoded JSON array result.
type Array = []any

// String returns a pointer to v, for optional string fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional int fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional bool fields.
func Bool(v bool) *bool { return &v }

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// sliceOr sends an empty list rather than null for list params that default to [].
func sliceOr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
