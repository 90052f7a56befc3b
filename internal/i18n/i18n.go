// Package i18n localises the comparison narrative.
// Messages live in embedded JSON files, one per language, keyed by
// message ID. Unknown languages fall back to English.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *goi18n.Bundle
)

func loadBundle() *goi18n.Bundle {
	bundleOnce.Do(func() {
		bundle = goi18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
		for _, name := range []string{"locales/en.json", "locales/zh.json"} {
			if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
				panic(fmt.Sprintf("i18n: load %s: %v", name, err))
			}
		}
	})
	return bundle
}

// Localizer translates messages for one language.
type Localizer struct {
	loc     *goi18n.Localizer
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for lang (e.g. "zh-CN", "en_US.UTF-8").
// An empty or unsupported lang yields English.
func New(lang string) *Localizer {
	b := loadBundle()
	tag := matchTag(b, lang)
	return &Localizer{
		loc:     goi18n.NewLocalizer(b, tag.String()),
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Default returns an English localizer.
func Default() *Localizer {
	return New("en")
}

// Language returns the base language in use ("en", "zh").
func (l *Localizer) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// T translates a message by its ID with optional template data.
// Returns the message ID if the message is missing.
func (l *Localizer) T(messageID string, data map[string]any) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Int formats an integer with the language's digit grouping.
func (l *Localizer) Int(n int64) string {
	return l.printer.Sprintf("%d", n)
}

// Float formats a value with one decimal place.
func (l *Localizer) Float(f float64) string {
	return l.printer.Sprintf("%.1f", f)
}

// Number formats integral values without decimals and others with one.
func (l *Localizer) Number(f float64) string {
	if f == float64(int64(f)) {
		return l.Int(int64(f))
	}
	return l.Float(f)
}

func matchTag(b *goi18n.Bundle, lang string) language.Tag {
	lang = normalizePOSIX(lang)
	if lang == "" {
		return language.English
	}
	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return language.English
	}
	tags := b.LanguageTags()
	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return language.English
	}
	return tags[idx]
}

// normalizePOSIX converts "zh_CN.UTF-8" style locales to BCP 47.
func normalizePOSIX(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if strings.EqualFold(lang, "C") || strings.EqualFold(lang, "POSIX") {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
