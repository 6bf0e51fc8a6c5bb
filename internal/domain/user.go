package domain

import (
	"github.com/uptrace/bun"
)

// User is the read-only directory row used to resolve notification
// recipients. Account management lives in the identity service; this core
// never writes the table.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID       string `bun:"id,pk"`
	Email    string `bun:"email,notnull"`
	FullName string `bun:"full_name"`
	Role     Role   `bun:"role,notnull"`
	IsActive bool   `bun:"is_active,notnull"`
}

// DisplayName is the name used in notification bodies, falling back to the
// email address when no full name is on file.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
