package users_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	audit_logs "vazifa/internal/features/audit_logs"
	users_dto "vazifa/internal/features/users/dto"
	users_enums "vazifa/internal/features/users/enums"
	users_models "vazifa/internal/features/users/models"
	users_repositories "vazifa/internal/features/users/repositories"
	"vazifa/internal/util/apperrors"
)

type UserService struct {
	userRepository      *users_repositories.UserRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
	auditLogService     *audit_logs.AuditLogService
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to check existing user: %w", err))
	}

	if existingUser != nil {
		return apperrors.Conflict("user with this email already exists")
	}

	language := request.Language
	if language == "" {
		language = users_enums.LanguageUzbek
	}
	if !language.IsValid() {
		return apperrors.Validation("language must be one of: uz, ja, en")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &users_models.User{
		ID:             uuid.New(),
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
		Language:       language,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to create user: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get user: %w", err))
	}

	if user == nil {
		return nil, apperrors.Validation("email or password is incorrect")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, apperrors.Validation("email or password is incorrect")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User signed in with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return response, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, errors.New("user no longer exists")
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get secret key: %w", err))
	}

	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": expiration.Unix(),
		"iat": time.Now().UTC().Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to generate token: %w", err))
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}
}
