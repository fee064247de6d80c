package domains

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Viewer is the caller identity attached to a request.
type Viewer struct {
	UserID uuid.UUID
	Role   Role
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
