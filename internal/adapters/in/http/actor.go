package http

import (
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service. The gateway
// authenticates the caller; this adapter only reconstructs the actor.
const (
	HeaderActorID    = "X-Actor-Id"
	HeaderActorRole  = "X-Actor-Role"
	HeaderActorParty = "X-Actor-Party"
)

// actorFromRequest reconstructs the authenticated actor from identity
// headers. Customer and supplier actors additionally carry the party record
// they own; admin actors carry none.
func actorFromRequest(ctx echo.Context) (auth.Actor, error) {
	header := ctx.Request().Header

	actorID, err := kernel.UUIDFromString(header.Get(HeaderActorID))
	if err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID, err)
	}

	role := auth.Role(header.Get(HeaderActorRole))
	if err := role.Validate(); err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorRole, err)
	}

	if role == auth.RoleAdmin {
		return auth.NewAdminActor(actorID)
	}

	partyID, err := kernel.UUIDFromString(header.Get(HeaderActorParty))
	if err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorParty, err)
	}

	if role == auth.RoleCustomer {
		return auth.NewCustomerActor(actorID, partyID)
	}
	return auth.NewSupplierActor(actorID, partyID)
}
