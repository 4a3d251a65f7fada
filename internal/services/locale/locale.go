// Package locale picks the interface language and holds the translated interface strings.
package locale

import (
	"os"
	"strings"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// envVars are consulted in order when no host locale is configured
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect resolves the language setting to a concrete language. "auto" maps any host locale
// starting with "ru" to Russian and everything else to English.
func Detect(setting domain.Language, hostLocale string) domain.Language {
	switch setting {
	case domain.LanguageEN, domain.LanguageRU:
		return setting
	}
	if strings.HasPrefix(strings.ToLower(hostLocale), "ru") {
		return domain.LanguageRU
	}
	return domain.LanguageEN
}

// HostLocale returns override when set, otherwise the first non-empty locale variable of the
// environment
func HostLocale(override string) string {
	return hostLocale(override, os.Getenv)
}

func hostLocale(override string, getenv func(string) string) string {
	if override != "" {
		return override
	}
	for _, name := range envVars {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return ""
}
