package command

import "identity-service/internal/application/common"

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCommandResult struct {
	Result *common.AuthResult `json:"result"`
}
