package dto

import "time"

type TokenResponse struct {
	Token               string    `json:"token"`
	RefreshToken        string    `json:"refreshToken"`
	TokenType           string    `json:"tokenType"`
	TokenExpires        time.Time `json:"tokenExpires"`
	RefreshTokenExpires time.Time `json:"refreshTokenExpires"`
}
