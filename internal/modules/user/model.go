package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles ordered roughly by privilege. Super admin accounts cannot be
// suspended, deleted or demoted through the API.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleAccueil    = "accueil"
	RoleVendeur    = "vendeur"
	RoleComptable  = "comptable"
	RoleUser       = "user"
)

// ValidRoles lists every role an account can be assigned.
var ValidRoles = []string{RoleSuperAdmin, RoleAdmin, RoleAccueil, RoleVendeur, RoleComptable, RoleUser}

// User is a staff account of the shop.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Suspended    bool      `json:"suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
