package users

import (
	"time"

	"github.com/google/uuid"
)

// RoleName is the closed set of role identifiers. Nothing outside this set
// is ever persisted.
type RoleName string

const (
	RoleUser  RoleName = "user"
	RoleAdmin RoleName = "admin"
)

// AllRoleNames returns every role the system knows about.
func AllRoleNames() []RoleName {
	return []RoleName{RoleUser, RoleAdmin}
}

func IsValidRoleName(name string) bool {
	switch RoleName(name) {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      RoleName  `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // hide in json
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

// RoleNames flattens the loaded roles into their names.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r.Name))
	}
	return names
}

// HasRole reports whether the given role set contains the role.
func HasRole(roles []string, name RoleName) bool {
	for _, r := range roles {
		if RoleName(r) == name {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role set grants admin access.
func IsAdmin(roles []string) bool {
	return HasRole(roles, RoleAdmin)
}

func (u *User) IsAdmin() bool {
	return IsAdmin(u.RoleNames())
}
