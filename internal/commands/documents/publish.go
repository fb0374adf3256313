package documentscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const publishDocumentMessageType = "landing.documents.publish"

// PublishDocumentCommand requests publication of one locale's draft.
type PublishDocumentCommand struct {
	TenantRef    string `json:"tenant_ref"`
	Country      string `json:"country"`
	LanguageCode string `json:"language_code"`
}

// Type implements command.Message.
func (PublishDocumentCommand) Type() string { return publishDocumentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishDocumentCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantRef == "" {
		errs["tenant_ref"] = validation.NewError("landing.documents.publish.tenant_ref_required", "tenant_ref is required")
	}
	if m.Country == "" {
		errs["country"] = validation.NewError("landing.documents.publish.country_required", "country is required")
	}
	if m.LanguageCode == "" {
		errs["language_code"] = validation.NewError("landing.documents.publish.language_code_required", "language_code is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishDocumentHandler publishes drafts via the document service using the
// shared command handler foundation.
type PublishDocumentHandler struct {
	inner *commands.Handler[PublishDocumentCommand]
}

// NewPublishDocumentHandler constructs a handler wired to the provided document service.
func NewPublishDocumentHandler(service documents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishDocumentCommand]) *PublishDocumentHandler {
	exec := func(ctx context.Context, msg PublishDocumentCommand) error {
		_, err := service.Publish(ctx, documents.LocaleRef{
			TenantRef:    msg.TenantRef,
			Country:      msg.Country,
			LanguageCode: msg.LanguageCode,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishDocumentCommand]{
		commands.WithLogger[PublishDocumentCommand](logger),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishDocumentHandler{
		inner: commands.NewHandler("documents.publish", exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishDocumentCommand].Execute.
func (h *PublishDocumentHandler) Execute(ctx context.Context, msg PublishDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
