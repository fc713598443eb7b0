package mandrill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnvAPIKey is the environment variable consulted when no key is passed to New.
const EnvAPIKey = "MANDRILL_APIKEY"

// Key sources reported by resolveAPIKey.
const (
	keySourceArgument = "argument"
	keySourceEnv      = "env"
)

// DefaultKeyFiles returns the well-known key file locations, user-level first.
func DefaultKeyFiles() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".mandrill.key"))
	}
	return append(paths, "/etc/mandrill.key")
}

// resolveAPIKey finds the API key: explicit argument, then EnvAPIKey, then the
// first key file holding a non-empty key. The second return value names the source.
// Only key file contents are trimmed; a non-empty argument or variable is used as is.
func resolveAPIKey(explicit string, fsys afero.Fs, paths []string) (string, string, error) {
	if explicit != "" {
		return explicit, keySourceArgument, nil
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, keySourceEnv, nil
	}

	for _, path := range paths {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			// Missing or unreadable files fall through to the next location.
			continue
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, path, nil
		}
	}

	return "", "", &ConfigError{
		Reason: fmt.Sprintf("no API key given, %s is unset and no key file found (%s)", EnvAPIKey, strings.Join(paths, ", ")),
	}
}
