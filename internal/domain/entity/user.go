// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an identity record keyed by the OAuth provider's subject claim.
// It is upserted on every login so the profile fields track the provider.
type User struct {
	ID        string    `json:"id"`        // Provider subject ('sub' claim), the primary key.
	Email     string    `json:"email"`     // Primary contact email, unique across users.
	Name      string    `json:"name"`      // Display name as reported by the provider.
	AvatarURL string    `json:"avatarUrl"` // URL of the provider profile picture.
	CreatedAt time.Time `json:"createdAt"` // When this account was first seen.
	UpdatedAt time.Time `json:"updatedAt"` // Last login / profile refresh.
}
