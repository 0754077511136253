package application

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"langfield/internal/domain"
	"langfield/internal/domain/entities"
)

type pages = map[string]map[string]string

func newResolver(t *testing.T, tables ...pages) *Resolver {
	t.Helper()
	r := NewResolver()
	for i, p := range tables {
		require.True(t, r.RegisterSource(entities.NewSource(string(rune('a'+i)), p)))
	}
	return r
}

func resolve(t *testing.T, r *Resolver, template string) string {
	t.Helper()
	out, err := r.Resolve(template)
	require.NoError(t, err)
	return out
}

func TestResolver_Priority(t *testing.T) {
	r := newResolver(t,
		pages{"1001": {"1": "first"}},
		pages{"1001": {"1": "second"}},
	)
	assert.Equal(t, "first", resolve(t, r, "{1001,1}"))
}

func TestResolver_Fallback(t *testing.T) {
	r := newResolver(t,
		pages{"2000": {"1": "elsewhere"}},
		pages{"1001": {"1": "found"}},
	)
	assert.Equal(t, "found", resolve(t, r, "{1001,1}"))
}

func TestResolver_DuplicateRegistrationIgnored(t *testing.T) {
	first := entities.NewSource("english", pages{"1": {"1": "one"}})
	r := NewResolver()
	assert.True(t, r.RegisterSource(first))
	assert.False(t, r.RegisterSource(entities.NewSource("english", pages{"1": {"1": "uno"}})))
	assert.False(t, r.RegisterSource(nil))
	assert.Len(t, r.Sources(), 1)
	assert.Equal(t, "one", resolve(t, r, "{1,1}"))
}

func TestResolver_Recursion(t *testing.T) {
	r := newResolver(t, pages{
		"1001":  {"5802": "Planned Amount of {20201,1501}"},
		"20201": {"1501": "Graphene"},
	})
	assert.Equal(t, "Planned Amount of Graphene", resolve(t, r, "{1001,5802}"))
}

func TestResolver_MultiLevelRecursion(t *testing.T) {
	r := newResolver(t, pages{
		"1001":  {"5802": "Planned Amount of {20201,1501}"},
		"20201": {"1501": "{20201,1502}", "1502": "Graphene"},
	})
	assert.Equal(t, "Planned Amount of Graphene", resolve(t, r, "{1001,5802}"))
}

func TestResolver_MultiplePlaceholders(t *testing.T) {
	r := newResolver(t, pages{
		"20101": {"10101": "Discoverer", "1": "(Discoverer Vanguard){20101,10101} {20111,1101}"},
		"20111": {"1101": "Vanguard"},
	})
	assert.Equal(t, "Discoverer Vanguard", resolve(t, r, "{20101,1}"))
	assert.Equal(t, "Discoverer Vanguard", resolve(t, r, "{20101,10101} {20111,1101}"))
}

func TestResolver_Comments(t *testing.T) {
	r := newResolver(t, pages{"1": {
		"1": "(Storage)None",
		"2": `Shield Generators \(including groups\)`,
		"3": `aaaa\(bbbb(cccc)\)`,
		"4": `aaaa\(bbbb(cc\)cc)`,
		"5": `aaaa(\(bbbb)cc\)cc`,
		"6": `aaaa(\(bbbb\)cc)cc`,
	}})

	tests := map[string]string{
		"{1,1}": "None",
		"{1,2}": "Shield Generators (including groups)",
		"{1,3}": "aaaa(bbbb)",
		"{1,4}": "aaaa(bbbb",
		"{1,5}": "aaaacc)cc",
		"{1,6}": "aaaacc",
	}
	for template, want := range tests {
		assert.Equal(t, want, resolve(t, r, template), template)
	}
}

func TestResolver_NewlineEscape(t *testing.T) {
	r := newResolver(t, pages{"1": {"1": `aaaa\nbbbb`}})
	assert.Equal(t, "aaaa\nbbbb", resolve(t, r, "{1,1}"))
}

func TestResolver_OmittedPageID(t *testing.T) {
	r := newResolver(t, pages{"1": {"1": "aaaa", "2": "{, 1}bbbb"}})
	assert.Equal(t, "aaaabbbb", resolve(t, r, "{1,2}"))
}

func TestResolver_OmittedPageIDWithoutContext(t *testing.T) {
	r := newResolver(t, pages{"1": {"1": "aaaa"}})
	assert.Equal(t, "{,1}", resolve(t, r, "{,1}"))
}

func TestResolver_FirstMissStopsSource(t *testing.T) {
	r := newResolver(t,
		pages{"1": {"2": "two"}},
		pages{"1": {"1": "ONE", "2": "TWO"}},
	)
	// the first source misses {1,1} and never reaches {1,2}
	assert.Equal(t, "ONE TWO", resolve(t, r, "{1,1} {1,2}"))
	// the first source succeeds on {1,2}, then stops at {9,9}; the second is not consulted
	assert.Equal(t, "two {9,9} {1,1}", resolve(t, r, "{1,2} {9,9} {1,1}"))
}

func TestResolver_Unchanged(t *testing.T) {
	r := newResolver(t, pages{"1": {"1": "x"}})

	assert.Equal(t, "", resolve(t, r, ""))
	assert.Equal(t, "no fields here", resolve(t, r, "no fields here"))
	// nothing resolved: no escape decoding either
	assert.Equal(t, `keep \n {2,2}`, resolve(t, r, `keep \n {2,2}`))
	assert.Equal(t, "{a,1} {1,}", resolve(t, r, "{a,1} {1,}"))
}

func TestResolver_NoSources(t *testing.T) {
	assert.Equal(t, "{1,1}", resolve(t, NewResolver(), "{1,1}"))
}

func TestResolver_CyclicReference(t *testing.T) {
	r := NewResolver(
		WithSources(entities.NewSource("cycle", pages{"1": {"1": "{1,2}", "2": "x{1,1}"}})),
		WithMaxSubstitutions(16),
	)

	_, err := r.Resolve("{1,1}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCyclicReference))

	var cyc *domain.CyclicReferenceError
	require.True(t, errors.As(err, &cyc))
	assert.Equal(t, "cycle", cyc.SourceID)
	assert.Equal(t, 16, cyc.Limit)
	assert.Equal(t, "cyclic_reference", domain.Code(err))

	assert.Panics(t, func() { r.MustResolve("{1,1}") })
}

func TestResolver_SourceIsCopied(t *testing.T) {
	table := pages{"1": {"1": "before"}}
	r := newResolver(t, table)
	table["1"]["1"] = "after"
	assert.Equal(t, "before", r.MustResolve("{1,1}"))
}

func TestResolver_ConcurrentResolve(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newResolver(t, pages{
		"1001":  {"5802": "Planned Amount of {20201,1501}"},
		"20201": {"1501": "Graphene"},
	})

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.MustResolve("{1001,5802}")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "Planned Amount of Graphene", got)
	}
}

func TestSourceList_Order(t *testing.T) {
	a := entities.NewSource("a", nil)
	b := entities.NewSource("b", nil)
	l := NewSourceList(a, b, a)

	require.Equal(t, 2, l.Len())
	got := l.Sources()
	assert.Equal(t, "a", got[0].ID())
	assert.Equal(t, "b", got[1].ID())
}
