// Package langfield resolves `{pageID,textID}` language fields against a
// prioritized list of already-loaded language sources.
//
// Sources are registered once, highest priority first, and then shared by
// any number of concurrent Resolve calls:
//
//	r := langfield.NewResolver()
//	r.RegisterSource(langfield.NewSource("0001-l044", pages))
//	text, err := r.Resolve("{1001,5802}")
package langfield

import (
	"fmt"

	"go.uber.org/zap"

	"langfield/internal/application"
	"langfield/internal/config"
	"langfield/internal/domain"
	"langfield/internal/domain/entities"
	"langfield/internal/infrastructure/i18n"
	"langfield/internal/infrastructure/logging"
	"langfield/internal/ports/input"
	"langfield/internal/ports/output"
)

type (
	Source               = entities.Source
	LanguageSource       = output.LanguageSource
	Resolver             = application.Resolver
	Option               = application.Option
	Translator           = i18n.Translator
	CyclicReferenceError = domain.CyclicReferenceError
)

var (
	ErrCyclicReference = domain.ErrCyclicReference
	ErrInvalidConfig   = domain.ErrInvalidConfig
)

const DefaultMaxSubstitutions = application.DefaultMaxSubstitutions

func NewSource(id string, pages map[string]map[string]string) *Source {
	return entities.NewSource(id, pages)
}

func NewResolver(opts ...Option) *Resolver {
	return application.NewResolver(opts...)
}

func WithSources(sources ...LanguageSource) Option {
	return application.WithSources(sources...)
}

func WithMaxSubstitutions(n int) Option {
	return application.WithMaxSubstitutions(n)
}

func WithLogger(logger *zap.Logger) Option {
	return application.WithLogger(logger)
}

// NewTranslator builds a locale-aware front end over one resolver per locale.
func NewTranslator(defaultLocale string, resolvers map[string]*Resolver, logger *zap.Logger) *Translator {
	m := make(map[string]input.ResolverUseCase, len(resolvers))
	for locale, r := range resolvers {
		m[locale] = r
	}
	return i18n.NewTranslator(defaultLocale, m, logger)
}

// NewFromEnv loads the configuration from the environment (and .env), builds
// the logger it asks for and returns an empty resolver using both.
func NewFromEnv() (*Resolver, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("langfield: %w", err)
	}
	r := application.NewResolver(
		application.WithMaxSubstitutions(cfg.MaxSubstitutions),
		application.WithLogger(logger),
	)
	logger.Debug("resolver ready",
		zap.String("default_locale", cfg.DefaultLocale),
		zap.Int("max_substitutions", cfg.MaxSubstitutions))
	return r, logger, nil
}
