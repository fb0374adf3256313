package interfaces

import "context"

// TextTranslator is the external machine-translation collaborator. It may
// fail or time out; callers treat every call as best effort and keep the
// source text when a translation is unavailable.
type TextTranslator interface {
	Translate(ctx context.Context, text string, targetLanguage string) (string, error)
}

// TextTranslatorFunc adapts a plain function to the TextTranslator contract.
type TextTranslatorFunc func(ctx context.Context, text string, targetLanguage string) (string, error)

// Translate implements TextTranslator.
func (f TextTranslatorFunc) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	return f(ctx, text, targetLanguage)
}
