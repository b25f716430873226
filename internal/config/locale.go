package config

import (
	"os"
	"strings"
)

// DetectLanguage reads the system locale from environment variables and returns
// the message catalog tag to use. Falls back to "en" if unset or unrecognized.
func DetectLanguage() string {
	locale := ""
	for _, env := range []string{"LC_ALL", "LANG", "LANGUAGE"} {
		if v := os.Getenv(env); v != "" {
			locale = v
			break
		}
	}
	if locale == "" {
		return "en"
	}
	return parseLocale(locale)
}

// parseLocale turns a locale string like "zh_TW.UTF-8" into a catalog tag.
// Every Chinese locale maps to zh-TW, the only Chinese catalog.
func parseLocale(locale string) string {
	// Strip encoding (e.g., ".UTF-8") and modifier (e.g., "@euro")
	if idx := strings.IndexAny(locale, ".@"); idx != -1 {
		locale = locale[:idx]
	}
	// LANGUAGE may hold a colon-separated preference list
	if idx := strings.Index(locale, ":"); idx != -1 {
		locale = locale[:idx]
	}
	locale = strings.ToLower(strings.TrimSpace(locale))

	lang := locale
	if idx := strings.IndexAny(lang, "_-"); idx != -1 {
		lang = lang[:idx]
	}

	switch lang {
	case "zh":
		return "zh-TW"
	default:
		return "en"
	}
}
