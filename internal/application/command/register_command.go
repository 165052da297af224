package command

import "identity-service/internal/application/common"

type RegisterCommand struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role,omitempty"`
}

type RegisterCommandResult struct {
	Result *common.AuthResult `json:"result"`
}
