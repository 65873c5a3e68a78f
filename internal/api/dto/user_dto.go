package dto

import "time"

type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

type AuthorDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type ProfileDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	PostCount int64     `json:"post_count"`
	Following bool      `json:"following"`
}
