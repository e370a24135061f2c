// Package models defines server-side data models persisted by the
// registration flow.
package models

import "time"

// ParticipationType enumerates the ways an account takes part in the fair.
type ParticipationType string

const (
	ParticipationBuyer     ParticipationType = "buyer"
	ParticipationExhibitor ParticipationType = "exhibitor"
	ParticipationVisitor   ParticipationType = "visitor"
)

// ValidParticipationType reports whether v is a known participation type.
func ValidParticipationType(v string) bool {
	switch ParticipationType(v) {
	case ParticipationBuyer, ParticipationExhibitor, ParticipationVisitor:
		return true
	}
	return false
}

// User is an account identity created exactly once per successful
// registration. PasswordHash holds a bcrypt hash; the plaintext is never
// stored or logged.
type User struct {
	ID                int64
	FirstName         string
	LastName          string
	Email             string
	UserName          string
	PasswordHash      string
	ParticipationType ParticipationType
	CreatedAt         time.Time
}
