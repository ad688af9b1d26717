// Package identity is the client side of the external identity service.
// Vendors and clients are owned elsewhere; the scheduling core only ever
// asks whether a party exists. Existence checks are advisory pre-validation:
// the authoritative no-double-booking invariant is enforced at the storage
// layer regardless of how fresh these answers are.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnavailable marks a collaborator that is unreachable or timed out, as
// opposed to one that answered "no such party".
var ErrUnavailable = errors.New("identity service unavailable")

type Verifier interface {
	VendorExists(ctx context.Context, vendorID uuid.UUID) (bool, error)
	ClientExists(ctx context.Context, clientID uuid.UUID) (bool, error)
}
