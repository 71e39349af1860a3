package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleViewer  = "VIEWER"
)

// User representa un usuario de la aplicación. PasswordHash y
// HashedRefreshToken nunca se serializan hacia afuera.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	Role               string // ADMIN, MANAGER, VIEWER
	HashedRefreshToken string // bcrypt del refresh token vigente; vacío = sin sesión
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidRole indica si el rol pertenece al catálogo.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}
