package command

import "identity-service/internal/application/common"

type RefreshCommand struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshCommandResult struct {
	Result *common.AuthResult `json:"result"`
}

type LogoutCommand struct {
	RefreshToken string `json:"refresh_token"`
}
