// Package policy holds the pure access decision functions. Each predicate
// takes the acting identity (and target where relevant) and returns nil on
// allow or the specific denial error on deny. No storage access happens here.
package policy

import (
	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
)

// IsAdmin allows only admin identities.
func IsAdmin(actor *entities.User) error {
	if actor == nil || actor.Role != entities.UserRoleAdmin {
		return domainerrors.ErrForbidden
	}
	return nil
}

// IsApprovedSeller allows only sellers whose application has been approved.
func IsApprovedSeller(actor *entities.User) error {
	if actor == nil || actor.Role != entities.UserRoleSeller || !actor.IsSellerApproved {
		return domainerrors.ErrSellerNotApproved
	}
	return nil
}

// IsOwner allows only the seller owning the product. Admins do not bypass
// ownership for general edits; moderation has its own admin-only path.
func IsOwner(actor *entities.User, product *entities.Product) error {
	if actor == nil || product == nil || product.SellerID != actor.ID {
		return domainerrors.ErrNotOwner
	}
	return nil
}
