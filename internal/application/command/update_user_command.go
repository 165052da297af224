package command

// UpdateUserCommand is a partial profile update; nil fields are left
// untouched.
type UpdateUserCommand struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
