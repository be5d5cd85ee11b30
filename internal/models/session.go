package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the explicit capability token threaded through every service
// call. Token is the raw bearer token, forwarded verbatim to the commerce API.
// A nil Session means an unauthenticated caller.
type Session struct {
	UserID string
	Email  string
	Role   string
	Token  string
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != ""
}

func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Role == RoleAdmin
}
