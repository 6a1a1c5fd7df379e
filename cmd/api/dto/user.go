package dto

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponseDTO carries the issued token and the signed-in identity.
type AuthResponseDTO struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// UserProfileDTO is the /api/v1/users/profile response schema.
type UserProfileDTO struct {
	UID         string  `json:"uid"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	CreatedAt   string  `json:"createdAt"`
	LastLoginAt *string `json:"lastLoginAt"`
	IsActive    bool    `json:"isActive"`
}
