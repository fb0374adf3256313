package documentscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const unpublishDocumentMessageType = "landing.documents.unpublish"

// UnpublishDocumentCommand requests removal of one locale's published snapshot.
type UnpublishDocumentCommand struct {
	TenantRef    string `json:"tenant_ref"`
	Country      string `json:"country"`
	LanguageCode string `json:"language_code"`
}

// Type implements command.Message.
func (UnpublishDocumentCommand) Type() string { return unpublishDocumentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UnpublishDocumentCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantRef == "" {
		errs["tenant_ref"] = validation.NewError("landing.documents.unpublish.tenant_ref_required", "tenant_ref is required")
	}
	if m.Country == "" {
		errs["country"] = validation.NewError("landing.documents.unpublish.country_required", "country is required")
	}
	if m.LanguageCode == "" {
		errs["language_code"] = validation.NewError("landing.documents.unpublish.language_code_required", "language_code is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnpublishDocumentHandler reverts locales to draft-only via the document service.
type UnpublishDocumentHandler struct {
	inner *commands.Handler[UnpublishDocumentCommand]
}

// NewUnpublishDocumentHandler constructs a handler wired to the provided document service.
func NewUnpublishDocumentHandler(service documents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishDocumentCommand]) *UnpublishDocumentHandler {
	exec := func(ctx context.Context, msg UnpublishDocumentCommand) error {
		_, err := service.Unpublish(ctx, documents.LocaleRef{
			TenantRef:    msg.TenantRef,
			Country:      msg.Country,
			LanguageCode: msg.LanguageCode,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[UnpublishDocumentCommand]{
		commands.WithLogger[UnpublishDocumentCommand](logger),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishDocumentHandler{
		inner: commands.NewHandler("documents.unpublish", exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnpublishDocumentCommand].Execute.
func (h *UnpublishDocumentHandler) Execute(ctx context.Context, msg UnpublishDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
