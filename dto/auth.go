package dto

import "time"

// LoginInput accepts email or phone as the identifier
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role" binding:"required"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	UserStatus   string    `json:"userStatus"`
	UserAvatar   string    `json:"userAvatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
