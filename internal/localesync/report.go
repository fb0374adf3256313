package localesync

import "github.com/goliatone/go-landing/internal/documents"

// OutcomeStatus classifies what happened to one document during a batch run.
type OutcomeStatus string

const (
	// OutcomeUpdated means the document was changed and persisted.
	OutcomeUpdated OutcomeStatus = "updated"
	// OutcomeUnchanged means the document already matched the source.
	OutcomeUnchanged OutcomeStatus = "unchanged"
	// OutcomeSkipped means the document could not be aligned with the
	// source, for example a block count mismatch.
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomeFailed means persisting the document failed. The batch
	// continues past it.
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome reports one document's result within a batch run.
type Outcome struct {
	Country      string        `json:"country"`
	LanguageCode string        `json:"language_code"`
	Status       OutcomeStatus `json:"status"`
	Changed      int           `json:"changed"`
	Reason       string        `json:"reason,omitempty"`
}

// Report summarizes a batch consistency run across a tenant's locales.
type Report struct {
	TenantSlug string           `json:"tenant_slug"`
	Source     documents.Locale `json:"source"`
	Outcomes   []Outcome        `json:"outcomes"`
	Updated    int              `json:"updated"`
	Unchanged  int              `json:"unchanged"`
	Skipped    int              `json:"skipped"`
	Failed     int              `json:"failed"`
}

func (r *Report) add(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Status {
	case OutcomeUpdated:
		r.Updated++
	case OutcomeUnchanged:
		r.Unchanged++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}
