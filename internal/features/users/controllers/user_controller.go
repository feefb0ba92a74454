package users_controllers

import (
	"net/http"

	users_dto "vazifa/internal/features/users/dto"
	users_middleware "vazifa/internal/features/users/middleware"
	users_services "vazifa/internal/features/users/services"
	"vazifa/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60 // seconds, matches token expiry

type UserController struct {
	userService   *users_services.UserService
	signinLimiter *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup", c.SignUp)
	router.POST("/users/signin", c.SignIn)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
	router.POST("/users/signout", c.SignOut)
}

func (c *UserController) SignUp(ctx *gin.Context) {
	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	if err := c.userService.SignUp(&request); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user created successfully"})
}

func (c *UserController) SignIn(ctx *gin.Context) {
	// Rate limited to slow down brute force attempts
	if !c.signinLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded, please try again later"})
		return
	}

	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.SetCookie(users_middleware.SessionCookieName, response.Token, sessionCookieMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, response)
}

func (c *UserController) SignOut(ctx *gin.Context) {
	ctx.SetCookie(users_middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": c.userService.GetCurrentUserProfile(user)})
}
