// Package i18n provides the translated UI strings for namefinder.
// Catalogs are YAML files embedded from the locales directory; the file name
// (en.yaml, zh-TW.yaml) is the language tag.
package i18n

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded catalog and selects lang. Unknown languages fall
// back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang, "en")
	current = lang
}

// Lang returns the language passed to the last Init call.
func Lang() string {
	if localizer == nil {
		return "en"
	}
	return current
}

// Supported lists the language tags that have an embedded catalog.
func Supported() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	var tags []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		tags = append(tags, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	return tags
}

// T translates messageID. A missing ID is returned unchanged.
func T(messageID string) string {
	return TData(messageID, nil)
}

// TData translates messageID with template data, e.g. {{.Path}}.
func TData(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
