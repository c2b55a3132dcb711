package account

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor constructor")

// Actor is the resolved identity consumed by transition handlers and
// authorization predicates: a user id plus the staff and merchant flags from
// the user's profile. It is a value object; the authentication layer builds
// one per request.
type Actor struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	isStaff    bool
	isMerchant bool

	guard guard.ConstructorGuard
}

// NewActor creates an Actor for an authenticated user.
// The id must be valid; the flags come from the user's profile.
func NewActor(id kernel.UUID, isStaff, isMerchant bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:         id,
		isStaff:    isStaff,
		isMerchant: isMerchant,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	if err := a.guard.Validate(ErrActorIsNotConstructed); err != nil {
		return err
	}
	return a.id.Validate()
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// IsStaff reports whether the actor is a staff account.
func (a Actor) IsStaff() bool {
	return a.isStaff
}

// IsMerchant reports whether the actor's profile flags them as a merchant.
func (a Actor) IsMerchant() bool {
	return a.isMerchant
}

// IsEqual compares two actors by user id.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}
