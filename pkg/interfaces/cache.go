package interfaces

import "context"

// CacheInvalidator drops any cached public rendering for a locale path after
// a publish or unpublish transition. Calls are best effort: a failure is
// logged by the caller and never rolls back the state transition.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}
