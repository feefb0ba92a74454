package users_dto

import (
	"time"

	users_enums "vazifa/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Name     string               `json:"name"     binding:"required,min=1,max=255"`
	Email    string               `json:"email"    binding:"required,email"`
	Password string               `json:"password" binding:"required,min=8"`
	Language users_enums.Language `json:"language"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type UserProfileResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Language  users_enums.Language `json:"language"`
	CreatedAt time.Time            `json:"createdAt"`
}
