package localesynccmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/localesync"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const syncAnchorsMessageType = "landing.localesync.sync_anchors"

// SyncAnchorsCommand requests an anchor propagation run for a tenant.
// Country is optional; empty covers every country.
type SyncAnchorsCommand struct {
	TenantRef      string `json:"tenant_ref"`
	Country        string `json:"country,omitempty"`
	SourceLanguage string `json:"source_language,omitempty"`
}

// Type implements command.Message.
func (SyncAnchorsCommand) Type() string { return syncAnchorsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SyncAnchorsCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantRef == "" {
		errs["tenant_ref"] = validation.NewError("landing.localesync.sync_anchors.tenant_ref_required", "tenant_ref is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SyncAnchorsHandler runs anchor propagation via the consistency service.
type SyncAnchorsHandler struct {
	inner *commands.Handler[SyncAnchorsCommand]
}

// NewSyncAnchorsHandler constructs a handler wired to the provided consistency service.
func NewSyncAnchorsHandler(service localesync.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SyncAnchorsCommand]) *SyncAnchorsHandler {
	exec := func(ctx context.Context, msg SyncAnchorsCommand) error {
		_, err := service.SyncAnchorsAcrossLocales(ctx, localesync.SyncAnchorsInput{
			TenantRef:      msg.TenantRef,
			Country:        msg.Country,
			SourceLanguage: msg.SourceLanguage,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SyncAnchorsCommand]{
		commands.WithLogger[SyncAnchorsCommand](logger),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncAnchorsHandler{
		inner: commands.NewHandler("localesync.sync_anchors", exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncAnchorsCommand].Execute.
func (h *SyncAnchorsHandler) Execute(ctx context.Context, msg SyncAnchorsCommand) error {
	return h.inner.Execute(ctx, msg)
}
