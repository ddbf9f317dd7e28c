package dto

import "github.com/selin/acadcore/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@acadcore.app"`
	Password string `json:"password" binding:"required" example:"Password1"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn" example:"3600"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest represents a user registration request. RoleType is
// restricted to STUDENT and TEACHER; the admin account is seeded, not
// registered.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"student@acadcore.app"`
	Password  string `json:"password" binding:"required,min=8" example:"Password1"`
	FirstName string `json:"firstName" binding:"required" example:"Selin"`
	LastName  string `json:"lastName" binding:"required" example:"Demir"`
	RoleType  string `json:"roleType" binding:"required,oneof=STUDENT TEACHER" example:"STUDENT" enums:"STUDENT,TEACHER"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"student@acadcore.app"`
	FirstName string `json:"firstName" example:"Selin"`
	LastName  string `json:"lastName" example:"Demir"`
	RoleType  string `json:"roleType" example:"STUDENT" enums:"ADMIN,STUDENT,TEACHER"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user model to its response form.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleType:  string(user.RoleType),
	}
}
