package stores

import (
	"context"

	"github.com/google/uuid"
)

// AccessChecker gates every store operation on owner-or-active-employee
// membership.
type AccessChecker interface {
	CheckStoreAccess(ctx context.Context, storeID, userID uuid.UUID) error
}

var _ AccessChecker = (*Service)(nil)
