package access

import (
	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/pkg/apperror"
)

// Action is the operation the actor wants to perform on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Kind identifies the type of resource being acted on.
type Kind string

const (
	KindUser        Kind = "user"
	KindPointOfSale Kind = "point_of_sale"
	KindProduct     Kind = "product"
	KindCustomer    Kind = "customer"
	KindOrder       Kind = "order"
)

// Reason explains why a request was denied.
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonUnauthorized          Reason = "unauthorized"
	ReasonForbidden             Reason = "forbidden"
	ReasonSelfActionForbidden   Reason = "self_action_forbidden"
	ReasonLastResourceProtected Reason = "last_resource_protected"
)

// Actor is the authenticated user attempting the operation.
type Actor struct {
	ID            uuid.UUID
	Role          enum.Role
	PointOfSaleID *uuid.UUID
}

// Resource is a snapshot of the target record's access-relevant fields.
type Resource struct {
	Kind          Kind
	ID            uuid.UUID
	PointOfSaleID *uuid.UUID
	Role          enum.Role // set only when Kind == KindUser
}

// Request carries the full snapshot the decision is made over. The decision
// function never queries storage; callers supply everything up front.
type Request struct {
	Actor    Actor
	Action   Action
	Resource Resource

	// PayloadRole is the role being assigned when creating or updating a user.
	PayloadRole enum.Role

	// PointOfSaleCount is the total number of points of sale, required when
	// deleting a point of sale.
	PointOfSaleCount int64
}

// Decision is the outcome of evaluating a request against the rule table.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err maps a denial to the application error surfaced to the caller.
// Returns nil for allowed decisions.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthorized:
		return apperror.ErrUnauthorized
	case ReasonSelfActionForbidden:
		return apperror.ErrSelfActionForbidden
	case ReasonLastResourceProtected:
		return apperror.ErrLastResourceProtected
	default:
		return apperror.ErrForbidden
	}
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason Reason) Decision { return Decision{Allowed: false, Reason: reason} }

// Decide evaluates the role/permission rule table; the first matching rule
// wins. The last-point-of-sale and self-delete guards precede the admin
// override so they hold even for admins.
func Decide(req Request) Decision {
	actor := req.Actor
	res := req.Resource

	if !actor.Role.Valid() {
		return deny(ReasonUnauthorized)
	}

	// Last-point-of-sale guard: the system must always keep at least one.
	if req.Action == ActionDelete && res.Kind == KindPointOfSale && req.PointOfSaleCount <= 1 {
		return deny(ReasonLastResourceProtected)
	}

	// Self-delete guard: nobody deletes their own account.
	if req.Action == ActionDelete && res.Kind == KindUser && res.ID == actor.ID {
		return deny(ReasonSelfActionForbidden)
	}

	// Admin override.
	if actor.Role == enum.RoleAdmin {
		return allow()
	}

	// Admin-target guard: non-admins never touch admin users.
	if res.Kind == KindUser && res.Role == enum.RoleAdmin {
		return deny(ReasonForbidden)
	}

	// Role-escalation guard: only admins may grant the admin role.
	if res.Kind == KindUser && (req.Action == ActionCreate || req.Action == ActionUpdate) &&
		req.PayloadRole == enum.RoleAdmin {
		return deny(ReasonForbidden)
	}

	// Scope match: managers and staff act only within their own point of sale.
	if scopeMatches(actor, res) {
		if req.Action == ActionRead {
			return allow()
		}
		if actor.Role == enum.RoleManager {
			return allow()
		}
		return deny(ReasonForbidden)
	}

	return deny(ReasonForbidden)
}

func scopeMatches(actor Actor, res Resource) bool {
	if actor.Role != enum.RoleManager && actor.Role != enum.RoleStaff {
		return false
	}
	if actor.PointOfSaleID == nil || res.PointOfSaleID == nil {
		return false
	}
	return *actor.PointOfSaleID == *res.PointOfSaleID
}
