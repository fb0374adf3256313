package documents

// ResolveForRendering merges a document into the object served to a page
// renderer. Live mode returns the published snapshot over the row's
// non-content fields; a document that has never been published falls back to
// its draft so a brand-new tenant still renders something. Preview mode
// always returns the current draft. Non-content fields are never sourced
// from the snapshot, so a stale snapshot cannot resurrect an old activation
// flag or locale key.
func ResolveForRendering(document *Document, mode RenderMode) (*RenderedDocument, error) {
	switch mode {
	case RenderLive, RenderPreview:
	default:
		return nil, ErrRenderModeInvalid
	}

	rendered := &RenderedDocument{
		ID:           document.ID,
		TenantID:     document.TenantID,
		Country:      document.Country,
		LanguageCode: document.LanguageCode,
		Currency:     document.Currency,
		IsActive:     document.IsActive,
		IsPublished:  document.IsPublished,
		Version:      document.Version,
		CreatedAt:    document.CreatedAt,
		UpdatedAt:    document.UpdatedAt,
	}
	if document.PublishedAt != nil {
		at := *document.PublishedAt
		rendered.PublishedAt = &at
	}

	content := document.Content()
	if mode == RenderLive && document.PublishedData != nil {
		content = document.PublishedData.Clone()
	}
	rendered.ContentFields = content

	return rendered, nil
}
