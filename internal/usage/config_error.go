package usage

import "fmt"

// ConfigError reports a broken startup configuration, such as a duplicate
// command registration or a malformed configuration file. It is fatal.
func ConfigError(cause error, format string, args ...any) *Error {
	return newError(ErrConfig, fmt.Sprintf(format, args...), cause)
}
