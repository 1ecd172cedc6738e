package auth

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload minted for back-office sessions.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AdminTokenPayload captures the data encoded into an admin access token.
type AdminTokenPayload struct {
	Email string
	JTI   string
}

// RoleAdmin is the only role the storefront back office knows about.
const RoleAdmin = "admin"
