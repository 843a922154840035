package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller. Accounts live in the identity service;
// only the token claims reach this process.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanOperateVenue reports whether the actor may touch a venue's cash ledger.
func (a Actor) CanOperateVenue(ownerID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == RoleOwner && a.ID == ownerID
}

// CanActFor reports whether the actor may act on a player's reservation or credit.
// Venue owners may act for players at their own venues.
func (a Actor) CanActFor(playerID, venueOwnerID uuid.UUID) bool {
	return a.ID == playerID || a.CanOperateVenue(venueOwnerID)
}
