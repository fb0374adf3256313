package documents

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNameRequired = errors.New("documents: tenant name required")
	ErrTenantSlugRequired = errors.New("documents: tenant slug required")
	ErrTenantSlugInvalid  = errors.New("documents: tenant slug contains invalid characters")
	ErrTenantRefRequired  = errors.New("documents: tenant reference required")
	ErrTenantExists       = errors.New("documents: tenant slug already exists")

	ErrCountryRequired  = errors.New("documents: country required")
	ErrLanguageRequired = errors.New("documents: language code required")
	ErrLocaleExists     = errors.New("documents: locale already exists for tenant")

	ErrRenderModeInvalid = errors.New("documents: render mode invalid")
	ErrVersionConflict   = errors.New("documents: stale document version")
)

// NotFoundError is returned by repositories when a row does not exist. The
// resolve and render paths translate it into a tri-state status so callers
// never branch on an error for an absent tenant or locale.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a repository NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
