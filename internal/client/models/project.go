package models

type Project struct {
	ID          int64   `json:"id"`
	TeamID      int64   `json:"team_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedBy   int64   `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
	CanDelete   bool    `json:"can_delete"`
}
