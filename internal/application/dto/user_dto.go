package dto

import "time"

// UpdateUserRequest body para PUT /api/users/:id.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// UserFilterQuery filtros para el listado de usuarios.
type UserFilterQuery struct {
	Role string `query:"role"`
	PageQuery
}

// UserResponse representación externa de un usuario (nunca incluye hashes).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Meta PageMeta       `json:"meta"`
}
