package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_dto "vazifa/internal/features/users/dto"
	users_enums "vazifa/internal/features/users/enums"
	users_models "vazifa/internal/features/users/models"
	users_repositories "vazifa/internal/features/users/repositories"
	users_services "vazifa/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser inserts a user directly and returns a ready-to-use access
// token. The password hash is a placeholder; tests authenticate by token.
func CreateTestUser() *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", strings.ToLower(userID.String()[:8]))

	user := &users_models.User{
		ID:             userID,
		Name:           "Test User " + userID.String()[:8],
		Email:          email,
		HashedPassword: "$2a$10$test",
		Language:       users_enums.LanguageEnglish,
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Email = user.Email

	return response
}
