package localesynccmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/localesync"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const syncFilenamesMessageType = "landing.localesync.sync_filenames"

// SyncFilenamesCommand requests a filename backfill run for a tenant. The
// source locale defaults to US/en; empty targets cover every other document.
type SyncFilenamesCommand struct {
	TenantRef      string             `json:"tenant_ref"`
	SourceCountry  string             `json:"source_country,omitempty"`
	SourceLanguage string             `json:"source_language,omitempty"`
	Targets        []documents.Locale `json:"targets,omitempty"`
}

// Type implements command.Message.
func (SyncFilenamesCommand) Type() string { return syncFilenamesMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SyncFilenamesCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantRef == "" {
		errs["tenant_ref"] = validation.NewError("landing.localesync.sync_filenames.tenant_ref_required", "tenant_ref is required")
	}
	for _, target := range m.Targets {
		if target.Country == "" || target.LanguageCode == "" {
			errs["targets"] = validation.NewError("landing.localesync.sync_filenames.target_invalid", "targets require country and language_code")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SyncFilenamesHandler runs filename backfill via the consistency service.
type SyncFilenamesHandler struct {
	inner *commands.Handler[SyncFilenamesCommand]
}

// NewSyncFilenamesHandler constructs a handler wired to the provided consistency service.
func NewSyncFilenamesHandler(service localesync.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SyncFilenamesCommand]) *SyncFilenamesHandler {
	exec := func(ctx context.Context, msg SyncFilenamesCommand) error {
		_, err := service.SyncFilenames(ctx, localesync.SyncFilenamesInput{
			TenantRef: msg.TenantRef,
			Source: documents.Locale{
				Country:      msg.SourceCountry,
				LanguageCode: msg.SourceLanguage,
			},
			Targets: msg.Targets,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SyncFilenamesCommand]{
		commands.WithLogger[SyncFilenamesCommand](logger),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncFilenamesHandler{
		inner: commands.NewHandler("localesync.sync_filenames", exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncFilenamesCommand].Execute.
func (h *SyncFilenamesHandler) Execute(ctx context.Context, msg SyncFilenamesCommand) error {
	return h.inner.Execute(ctx, msg)
}
