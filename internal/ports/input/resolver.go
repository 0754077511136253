package input

import "langfield/internal/ports/output"

type ResolverUseCase interface {
	RegisterSource(src output.LanguageSource) bool
	Resolve(template string) (string, error)
}
