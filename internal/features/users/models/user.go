package users_models

import (
	"time"

	users_enums "vazifa/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"     gorm:"uniqueIndex"`
	HashedPassword string               `json:"-"         gorm:"column:hashed_password"`
	Language       users_enums.Language `json:"language"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
