// Package filter selects rated movies with expr-lang expressions such as
//
//	Rating >= 8 and hasText(Title, "alien")
//
// The environment exposes ID, Title, Poster, Description and Rating (a
// float64, 0 when the stored rating is not numeric) plus the case-insensitive
// helpers hasText, beginsWith and finishesWith. contains, startsWith and
// endsWith are expr's case-sensitive infix operators (Title contains "Al"),
// and lower and upper are expr builtins.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/kinolist/catalog"
)

// DefaultCacheSize is the number of compiled filters kept by NewCompiler(0)
const DefaultCacheSize = 64

// Filter is a compiled expression. The zero expression matches every entry.
type Filter struct {
	expression string
	program    *vm.Program
}

// Match reports whether the entry satisfies the filter. Evaluation errors
// count as no match.
func (f *Filter) Match(entry catalog.Entry) bool {
	if f == nil || f.program == nil {
		return true
	}

	result, err := expr.Run(f.program, newEnv(entry))
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// String returns the source expression
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expression
}

// Apply returns the entries matching f, keeping their order
func Apply(f *Filter, entries []catalog.Entry) []catalog.Entry {
	matches := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if f.Match(entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Compiler compiles expressions and caches the results
type Compiler struct {
	cache *lruCache
}

// NewCompiler creates a compiler keeping up to cacheSize compiled filters.
// A non-positive size uses DefaultCacheSize.
func NewCompiler(cacheSize int) *Compiler {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Compiler{cache: newLRUCache(cacheSize)}
}

// Compile compiles an expression into a filter
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}

	if cached, ok := c.cache.Get(expression); ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(catalog.Entry{})),
		expr.AsBool(), // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{expression: expression, program: program}
	c.cache.Put(expression, f)
	return f, nil
}

// CacheLen returns the number of cached filters
func (c *Compiler) CacheLen() int {
	return c.cache.Len()
}

// newEnv creates the evaluation environment for one entry
func newEnv(entry catalog.Entry) map[string]any {
	rating, _ := entry.Rating.Float()

	env := map[string]any{
		"ID":          entry.ID,
		"Title":       entry.Title,
		"Poster":      entry.Poster,
		"Description": entry.Description,
		"Rating":      rating,
	}
	addHelperFunctions(env)
	return env
}

// addHelperFunctions adds the case-insensitive string helpers to env. The
// names must not collide with expr operators (contains, startsWith, endsWith)
// or builtins (hasPrefix, hasSuffix).
func addHelperFunctions(env map[string]any) {
	env["hasText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["beginsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["finishesWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
}
