package translatecmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/translate"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const seedLocaleMessageType = "landing.translate.seed_locale"

// SeedLocaleCommand requests creation of a new locale document translated
// from an existing one. The source locale defaults to US/en.
type SeedLocaleCommand struct {
	TenantRef      string `json:"tenant_ref"`
	SourceCountry  string `json:"source_country,omitempty"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetCountry  string `json:"target_country"`
	TargetLanguage string `json:"target_language"`
	Currency       string `json:"currency,omitempty"`
}

// Type implements command.Message.
func (SeedLocaleCommand) Type() string { return seedLocaleMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SeedLocaleCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantRef == "" {
		errs["tenant_ref"] = validation.NewError("landing.translate.seed_locale.tenant_ref_required", "tenant_ref is required")
	}
	if m.TargetCountry == "" {
		errs["target_country"] = validation.NewError("landing.translate.seed_locale.target_country_required", "target_country is required")
	}
	if m.TargetLanguage == "" {
		errs["target_language"] = validation.NewError("landing.translate.seed_locale.target_language_required", "target_language is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SeedLocaleHandler seeds translated locales via the translation service.
type SeedLocaleHandler struct {
	inner *commands.Handler[SeedLocaleCommand]
}

// NewSeedLocaleHandler constructs a handler wired to the provided translation service.
func NewSeedLocaleHandler(service translate.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SeedLocaleCommand]) *SeedLocaleHandler {
	exec := func(ctx context.Context, msg SeedLocaleCommand) error {
		_, err := service.SeedLocale(ctx, translate.SeedLocaleInput{
			TenantRef: msg.TenantRef,
			Source: documents.Locale{
				Country:      msg.SourceCountry,
				LanguageCode: msg.SourceLanguage,
			},
			Target: documents.Locale{
				Country:      msg.TargetCountry,
				LanguageCode: msg.TargetLanguage,
			},
			Currency: msg.Currency,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SeedLocaleCommand]{
		commands.WithLogger[SeedLocaleCommand](logger),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SeedLocaleHandler{
		inner: commands.NewHandler("translate.seed_locale", exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SeedLocaleCommand].Execute.
func (h *SeedLocaleHandler) Execute(ctx context.Context, msg SeedLocaleCommand) error {
	return h.inner.Execute(ctx, msg)
}
