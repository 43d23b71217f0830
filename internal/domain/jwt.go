package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in bearer tokens
const (
	RoleMember = "member"
	RoleCoach  = "coach"
	RoleAdmin  = "admin" // Manages tier configuration and catalogs
)

// Claims represents the JWT claims issued by the identity provider
type Claims struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole checks if the claims carry a specific role
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
