package access_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func actor(role enum.Role, posID *uuid.UUID) access.Actor {
	return access.Actor{ID: uuid.New(), Role: role, PointOfSaleID: posID}
}

func TestDecide_AdminOverride(t *testing.T) {
	posID := uuid.New()
	admin := actor(enum.RoleAdmin, nil)

	tests := []struct {
		name string
		req  access.Request
	}{
		{
			name: "delete user in any scope",
			req: access.Request{
				Actor:  admin,
				Action: access.ActionDelete,
				Resource: access.Resource{
					Kind:          access.KindUser,
					ID:            uuid.New(),
					PointOfSaleID: &posID,
					Role:          enum.RoleManager,
				},
			},
		},
		{
			name: "create admin user",
			req: access.Request{
				Actor:       admin,
				Action:      access.ActionCreate,
				Resource:    access.Resource{Kind: access.KindUser},
				PayloadRole: enum.RoleAdmin,
			},
		},
		{
			name: "delete point of sale when others remain",
			req: access.Request{
				Actor:            admin,
				Action:           access.ActionDelete,
				Resource:         access.Resource{Kind: access.KindPointOfSale, ID: posID},
				PointOfSaleCount: 3,
			},
		},
		{
			name: "update product outside any scope",
			req: access.Request{
				Actor:    admin,
				Action:   access.ActionUpdate,
				Resource: access.Resource{Kind: access.KindProduct, ID: uuid.New(), PointOfSaleID: &posID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := access.Decide(tt.req)
			assert.True(t, decision.Allowed)
			assert.NoError(t, decision.Err())
		})
	}
}

func TestDecide_LastPointOfSaleGuardBeatsAdminOverride(t *testing.T) {
	admin := actor(enum.RoleAdmin, nil)

	decision := access.Decide(access.Request{
		Actor:            admin,
		Action:           access.ActionDelete,
		Resource:         access.Resource{Kind: access.KindPointOfSale, ID: uuid.New()},
		PointOfSaleCount: 1,
	})

	assert.False(t, decision.Allowed)
	assert.Equal(t, access.ReasonLastResourceProtected, decision.Reason)
	assert.ErrorIs(t, decision.Err(), apperror.ErrLastResourceProtected)
}

func TestDecide_SelfDeleteGuardBeatsAdminOverride(t *testing.T) {
	for _, role := range []enum.Role{enum.RoleAdmin, enum.RoleManager, enum.RoleStaff} {
		t.Run(string(role), func(t *testing.T) {
			posID := uuid.New()
			a := actor(role, &posID)

			decision := access.Decide(access.Request{
				Actor:  a,
				Action: access.ActionDelete,
				Resource: access.Resource{
					Kind:          access.KindUser,
					ID:            a.ID,
					PointOfSaleID: &posID,
					Role:          role,
				},
			})

			assert.False(t, decision.Allowed)
			assert.Equal(t, access.ReasonSelfActionForbidden, decision.Reason)
			assert.ErrorIs(t, decision.Err(), apperror.ErrSelfActionForbidden)
		})
	}
}

func TestDecide_NonAdminsNeverTouchAdmins(t *testing.T) {
	posID := uuid.New()
	manager := actor(enum.RoleManager, &posID)

	for _, action := range []access.Action{access.ActionRead, access.ActionUpdate, access.ActionDelete} {
		t.Run(string(action), func(t *testing.T) {
			decision := access.Decide(access.Request{
				Actor:  manager,
				Action: action,
				Resource: access.Resource{
					Kind:          access.KindUser,
					ID:            uuid.New(),
					PointOfSaleID: &posID,
					Role:          enum.RoleAdmin,
				},
			})

			assert.False(t, decision.Allowed)
			assert.ErrorIs(t, decision.Err(), apperror.ErrForbidden)
		})
	}
}

func TestDecide_RoleEscalationDenied(t *testing.T) {
	posID := uuid.New()
	manager := actor(enum.RoleManager, &posID)

	for _, action := range []access.Action{access.ActionCreate, access.ActionUpdate} {
		t.Run(string(action), func(t *testing.T) {
			decision := access.Decide(access.Request{
				Actor:  manager,
				Action: action,
				Resource: access.Resource{
					Kind:          access.KindUser,
					PointOfSaleID: &posID,
					Role:          enum.RoleStaff,
				},
				PayloadRole: enum.RoleAdmin,
			})

			assert.False(t, decision.Allowed)
		})
	}
}

func TestDecide_ScopeMatch(t *testing.T) {
	posID := uuid.New()
	otherPosID := uuid.New()

	tests := []struct {
		name    string
		role    enum.Role
		action  access.Action
		resPos  *uuid.UUID
		allowed bool
	}{
		{"manager reads own scope", enum.RoleManager, access.ActionRead, &posID, true},
		{"manager updates own scope", enum.RoleManager, access.ActionUpdate, &posID, true},
		{"manager deletes own scope", enum.RoleManager, access.ActionDelete, &posID, true},
		{"manager reads other scope", enum.RoleManager, access.ActionRead, &otherPosID, false},
		{"manager updates other scope", enum.RoleManager, access.ActionUpdate, &otherPosID, false},
		{"staff reads own scope", enum.RoleStaff, access.ActionRead, &posID, true},
		{"staff updates own scope", enum.RoleStaff, access.ActionUpdate, &posID, false},
		{"staff deletes own scope", enum.RoleStaff, access.ActionDelete, &posID, false},
		{"staff reads other scope", enum.RoleStaff, access.ActionRead, &otherPosID, false},
		{"manager without selected scope", enum.RoleManager, access.ActionRead, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := access.Decide(access.Request{
				Actor:  actor(tt.role, &posID),
				Action: tt.action,
				Resource: access.Resource{
					Kind:          access.KindProduct,
					ID:            uuid.New(),
					PointOfSaleID: tt.resPos,
				},
			})

			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

func TestDecide_StaffMayCreateOrdersNowhere(t *testing.T) {
	// Staff write access is denied even in their own scope
	posID := uuid.New()
	staff := actor(enum.RoleStaff, &posID)

	decision := access.Decide(access.Request{
		Actor:    staff,
		Action:   access.ActionCreate,
		Resource: access.Resource{Kind: access.KindOrder, PointOfSaleID: &posID},
	})

	assert.False(t, decision.Allowed)
}

func TestDecide_UnknownRoleUnauthorized(t *testing.T) {
	decision := access.Decide(access.Request{
		Actor:    access.Actor{ID: uuid.New(), Role: enum.Role("ghost")},
		Action:   access.ActionRead,
		Resource: access.Resource{Kind: access.KindProduct},
	})

	assert.False(t, decision.Allowed)
	assert.Equal(t, access.ReasonUnauthorized, decision.Reason)
	assert.ErrorIs(t, decision.Err(), apperror.ErrUnauthorized)
}

func TestDecide_DefaultDeny(t *testing.T) {
	// A manager with no shared scope falls through every rule
	posID := uuid.New()
	otherPosID := uuid.New()

	decision := access.Decide(access.Request{
		Actor:    actor(enum.RoleManager, &posID),
		Action:   access.ActionDelete,
		Resource: access.Resource{Kind: access.KindCustomer, ID: uuid.New(), PointOfSaleID: &otherPosID},
	})

	assert.False(t, decision.Allowed)
	assert.Equal(t, access.ReasonForbidden, decision.Reason)
	assert.ErrorIs(t, decision.Err(), apperror.ErrForbidden)
}
