package application

import (
	"go.uber.org/zap"

	"langfield/internal/domain"
	"langfield/internal/ports/input"
	"langfield/internal/ports/output"
	"langfield/pkg/langfield"
)

// DefaultMaxSubstitutions bounds the substitutions of one source pass.
const DefaultMaxSubstitutions = 1024

var _ input.ResolverUseCase = (*Resolver)(nil)

// Resolver expands `{page,text}` language fields against its sources.
// Sources are registered at start-up; Resolve is safe for concurrent use
// once registration is over.
type Resolver struct {
	sources          *SourceList
	maxSubstitutions int
	logger           *zap.Logger
}

type Option func(*Resolver)

// WithSources registers sources in the given order.
func WithSources(sources ...output.LanguageSource) Option {
	return func(r *Resolver) {
		for _, src := range sources {
			r.sources.Register(src)
		}
	}
}

// WithMaxSubstitutions sets the per-source substitution bound. Values below 1
// keep the default.
func WithMaxSubstitutions(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxSubstitutions = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		sources:          NewSourceList(),
		maxSubstitutions: DefaultMaxSubstitutions,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterSource adds src with a lower priority than every source already
// registered. Registering the same source id twice has no effect.
func (r *Resolver) RegisterSource(src output.LanguageSource) bool {
	return r.sources.Register(src)
}

// Sources returns the registered sources, highest priority first.
func (r *Resolver) Sources() []output.LanguageSource {
	return r.sources.Sources()
}

// Resolve expands the language fields in template.
//
// Sources are tried in priority order. Within a source, the left-most
// placeholder is substituted (comments stripped from the fragment) until
// none is left or one cannot be found in that source. The first source that
// substitutes anything wins and its result is escape-decoded; the remaining
// sources are not consulted. When no source substitutes anything, template
// is returned as is.
func (r *Resolver) Resolve(template string) (string, error) {
	if template == "" {
		return template, nil
	}

	for _, src := range r.sources.sources {
		out, ok, err := r.expand(template, src)
		if err != nil {
			r.logger.Warn("language field resolution aborted",
				zap.String("template", template),
				zap.String("source", src.ID()),
				zap.Error(err))
			return "", err
		}
		if ok {
			return langfield.DecodeEscapes(out), nil
		}
		r.logger.Debug("no field resolved, trying next source",
			zap.String("template", template),
			zap.String("source", src.ID()))
	}
	return template, nil
}

// MustResolve is like Resolve but panics on a cyclic reference.
func (r *Resolver) MustResolve(template string) string {
	out, err := r.Resolve(template)
	if err != nil {
		panic(err)
	}
	return out
}

// expand runs one source pass and reports whether anything was substituted.
func (r *Resolver) expand(template string, src output.LanguageSource) (string, bool, error) {
	current := template
	// page of the last substituted fragment, used by `{,id}`
	var currentPage string
	substitutions := 0

	for {
		ph, found := langfield.Scan(current)
		if !found {
			break
		}

		page := ph.PageID
		if !ph.HasPageID() {
			page = currentPage
		}
		if page == "" {
			break
		}

		raw, ok := src.Lookup(page, ph.TextID)
		if !ok {
			break
		}

		if substitutions == r.maxSubstitutions {
			return "", false, &domain.CyclicReferenceError{
				Template: template,
				SourceID: src.ID(),
				Limit:    r.maxSubstitutions,
			}
		}
		substitutions++

		current = current[:ph.Start] + langfield.StripComments(raw) + current[ph.End:]
		currentPage = page
	}

	return current, substitutions > 0, nil
}
