package dto

// TokenRequest payload for token issuance.
type TokenRequest struct {
	User string `json:"user"`
}

// TokenResponse carries the signed credential.
type TokenResponse struct {
	Token string `json:"token"`
}
