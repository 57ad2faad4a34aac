// Package langctx carries the target language of a generation run on the
// context.Context. Every downstream component that needs the run's language
// reads it from here instead of receiving it as an explicit parameter.
//
// Scoping follows context semantics: a child context with its own language
// never leaks into the parent, concurrently derived contexts are independent,
// and the enclosing value is restored on every exit path simply because the
// parent context is untouched.
package langctx

import (
	"context"

	"github.com/kadykov/cv-adapt/internal/language"
)

type contextKey struct{}

// NotSetError indicates that no target language has been established on the
// current context. The fix is always on the caller's side: wrap the call in
// With (or Run) before invoking anything that generates or validates text.
type NotSetError struct{}

func (e *NotSetError) Error() string {
	return "no target language set on context; wrap the call with langctx.With"
}

// With returns a child context carrying lang as the target language.
func With(ctx context.Context, lang language.Language) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// From returns the target language carried by ctx, or a *NotSetError when
// none has been established.
func From(ctx context.Context) (language.Language, error) {
	lang, ok := ctx.Value(contextKey{}).(language.Language)
	if !ok {
		return language.Language{}, &NotSetError{}
	}
	return lang, nil
}

// Run executes body with lang established as the target language. The
// enclosing context is unmodified regardless of how body exits.
func Run(ctx context.Context, lang language.Language, body func(context.Context) error) error {
	return body(With(ctx, lang))
}
