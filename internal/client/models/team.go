package models

// TeamRole is a user's role within a team.
type TeamRole string

const (
	RoleOwner  TeamRole = "owner"
	RoleMember TeamRole = "member"
)

// Valid reports whether the role is one the backend understands.
func (r TeamRole) Valid() bool {
	return r == RoleOwner || r == RoleMember
}

type Team struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedBy   int64   `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`

	// CurrentUserRole is absent when the backend does not report the
	// caller's membership.
	CurrentUserRole *TeamRole `json:"current_user_role"`
}

type TeamMember struct {
	ID        int64    `json:"id"`
	TeamID    int64    `json:"team_id"`
	UserID    int64    `json:"user_id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      TeamRole `json:"role"`
	JoinedAt  string   `json:"joined_at"`
}
