package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is the verb an identity wants to perform on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is the kind of target an action applies to.
type Resource string

const (
	ResourceStore   Resource = "store"
	ResourceProduct Resource = "product"
)

// ResourceRef identifies the target of an authorization check. ID is only
// meaningful for update/delete on an existing resource.
type ResourceRef struct {
	Resource Resource
	ID       uuid.UUID
}

// Scope is returned on ALLOW for create paths. Callers must stamp it onto the
// new resource; any store reference supplied in the request payload is
// overridden, which closes the payload-spoofing escalation.
type Scope struct {
	StoreID uuid.UUID
	ActorID uuid.UUID
}

// PolicyUsecase is the ownership policy engine: it decides, per request,
// whether an authenticated identity may act on a store or product.
//
// Gates are evaluated in a fixed order and each short-circuits:
// role gate, store-affiliation gate, inactive-store gate, ownership-match
// gate. A missing target product fails with a not-found error rather than a
// forbidden one, so clients can tell 404 from 403.
type PolicyUsecase interface {
	Authorize(ctx context.Context, identity *entity.Identity, action Action, ref ResourceRef) (*Scope, error)
}
