package models

// User is the authenticated operator identity extracted from OIDC claims.
// The dashboard keeps no user store; the session is the only record.
type User struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
