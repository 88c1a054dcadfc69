package config

import (
	"fmt"
	"strings"
	"time"
)

const zoneinfoMarker = "zoneinfo/"

// systemTimezone derives the OS timezone: $TZ, then the /etc/localtime
// symlink target, then /etc/timezone, then UTC.
func systemTimezone(src Source) string {
	if src.Getenv != nil {
		if tz := strings.TrimPrefix(src.Getenv("TZ"), ":"); tz != "" {
			return tz
		}
	}
	if src.Readlink != nil {
		if target, err := src.Readlink("/etc/localtime"); err == nil {
			if i := strings.Index(target, zoneinfoMarker); i >= 0 {
				return target[i+len(zoneinfoMarker):]
			}
		}
	}
	if src.ReadFile != nil {
		if data, err := src.ReadFile("/etc/timezone"); err == nil {
			if tz := strings.TrimSpace(string(data)); tz != "" {
				return tz
			}
		}
	}
	return "UTC"
}

// ApplyTimezone makes name the process-local timezone.
func ApplyTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	time.Local = loc
	return nil
}
