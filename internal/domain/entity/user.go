package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RolePartner  = "partner"
)

// ValidRole indica si el rol pertenece al conjunto admitido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperator, RolePartner:
		return true
	}
	return false
}

// User representa una cuenta del sistema (Credential Store).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca plano
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
