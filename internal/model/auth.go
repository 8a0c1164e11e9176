package model

import "github.com/golang-jwt/jwt/v5"

// HRClaims are JWT claims for HR dashboard authentication
type HRClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the credentials payload for HR login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
