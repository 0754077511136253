package i18n

import (
	"embed"
	"errors"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"langfield/internal/domain"
	"langfield/internal/ports/input"
	"langfield/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// fieldMessageID names the ad-hoc message used to render resolved fields.
const fieldMessageID = "langfield.field"

// Translator picks the resolver registered for the closest language and
// resolves language fields with it. Its own messages (error texts) come from
// the embedded active.*.toml files.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	tags            []language.Tag
	resolvers       []input.ResolverUseCase
	matcher         language.Matcher
	logger          *zap.Logger
}

// NewTranslator builds a Translator for the given default locale (e.g. "en")
// and one resolver per locale. Locales that do not parse are skipped.
func NewTranslator(defaultLocale string, resolvers map[string]input.ResolverUseCase, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
		}
	}

	t := &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}

	locales := make([]string, 0, len(resolvers))
	for locale := range resolvers {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	// The default language goes first so that unmatched locales fall back to it.
	for _, locale := range locales {
		lt, err := language.Parse(locale)
		if err != nil {
			logger.Warn("i18n: skipping resolver with invalid locale", zap.String("locale", locale), zap.Error(err))
			continue
		}
		if lt == tag {
			t.tags = append([]language.Tag{lt}, t.tags...)
			t.resolvers = append([]input.ResolverUseCase{resolvers[locale]}, t.resolvers...)
			continue
		}
		t.tags = append(t.tags, lt)
		t.resolvers = append(t.resolvers, resolvers[locale])
	}
	t.matcher = language.NewMatcher(t.tags)

	return t
}

// Languages returns the languages a resolver is registered for, default first.
func (t *Translator) Languages() []language.Tag {
	out := make([]language.Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

// resolverFor returns the resolver of the language closest to locale.
func (t *Translator) resolverFor(locale string) (input.ResolverUseCase, language.Tag, bool) {
	if len(t.resolvers) == 0 {
		return nil, language.Und, false
	}
	want := t.defaultLanguage
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			want = parsed
		}
	}
	_, idx, _ := t.matcher.Match(want)
	return t.resolvers[idx], t.tags[idx], true
}

// T resolves the language fields of key for the given locale. When data is
// not nil the resolved text is executed as a template with data.
// On failure the key itself is returned.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	r, tag, ok := t.resolverFor(locale)
	if !ok {
		t.logger.Warn("i18n: no resolver registered", zap.String("locale", locale))
		return key
	}

	text, err := r.Resolve(key)
	if err != nil {
		t.logger.Warn("i18n: resolve failed", zap.String("key", key), zap.String("locale", tag.String()), zap.Error(err))
		return key
	}
	if data == nil {
		return text
	}

	localizer := i18n.NewLocalizer(t.bundle, tag.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: fieldMessageID, Other: text},
		TemplateData:   data,
	})
	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		t.logger.Warn("i18n: render failed", zap.String("key", key), zap.String("locale", tag.String()), zap.Error(err))
		return text
	}
	return msg
}

// ErrorMessage maps a domain error to a user-facing message in the given
// locale, falling back to the default locale.
func (t *Translator) ErrorMessage(locale string, err error) string {
	if err == nil {
		return ""
	}

	code := domain.Code(err)
	if code == "" {
		code = "unknown"
	}
	data := map[string]any{"Error": err.Error()}
	var cyc *domain.CyclicReferenceError
	if errors.As(err, &cyc) {
		data["Template"] = cyc.Template
		data["Limit"] = cyc.Limit
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, lerr := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "error." + code,
		TemplateData: data,
	})
	if lerr != nil {
		t.logger.Warn("i18n: localize failed", zap.String("code", code), zap.Strings("locales", languages), zap.Error(lerr))
		return err.Error()
	}
	return msg
}
