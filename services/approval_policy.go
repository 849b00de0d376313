package services

import (
	"lodging-backend/models"
)

// ApprovalPolicy decides whether a freshly created booking needs the owner's
// review before it counts as confirmed. Implementations must be pure: no side
// effects, decision is a function of the inputs only. This is the single
// extension point for real approval rules (owner preferences, date conflicts);
// swapping the policy never touches booking identity or persistence code.
type ApprovalPolicy interface {
	RequiresApproval(placeID string, booking models.Booking) bool
}

// AutoApprovePolicy is the default: nothing requires approval, so every
// reservation is confirmed on the spot.
type AutoApprovePolicy struct{}

// TODO: implement a real approval policy once owner settings exist
func (AutoApprovePolicy) RequiresApproval(placeID string, booking models.Booking) bool {
	return false
}
