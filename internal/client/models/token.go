package models

// TokenData is the session credential issued on signup or login.
// ExpiresIn is informational only: the client does not track expiry.
type TokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
