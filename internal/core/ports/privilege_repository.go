package ports

import (
	"context"

	"github.com/veridianlabs/identity-api/internal/core/domain"
)

// PrivilegeRepository answers whether a principal holds a named privilege.
type PrivilegeRepository interface {
	Has(ctx context.Context, principal *domain.Principal, privilege string) (bool, error)
}
