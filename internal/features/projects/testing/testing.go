package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	users_dto "vazifa/internal/features/users/dto"
	users_middleware "vazifa/internal/features/users/middleware"
	users_services "vazifa/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	return router
}

func CreateTestProjectViaAPI(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+owner.Token, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response struct {
		Project projects_dto.ProjectResponseDTO `json:"project"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &projects_models.Project{
		ID:      response.Project.ID,
		Name:    response.Project.Name,
		OwnerID: response.Project.OwnerID,
	}
}

func InviteMemberViaAPI(
	project *projects_models.Project,
	email string,
	role projects_enums.ProjectRole,
	inviterToken string,
	router *gin.Engine,
) *projects_dto.InviteMemberResponseDTO {
	request := projects_dto.InviteMemberRequestDTO{
		Email: email,
		Role:  role,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+inviterToken,
		request,
	)

	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		panic("Failed to invite member via API: " + w.Body.String())
	}

	var response projects_dto.InviteMemberResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func AcceptInviteViaAPI(inviteID uuid.UUID, memberToken string, router *gin.Engine) {
	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+inviteID.String()+"/accept",
		"Bearer "+memberToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to accept invitation via API: " + w.Body.String())
	}
}

// AddActiveMemberViaAPI invites the member and accepts on their behalf.
func AddActiveMemberViaAPI(
	project *projects_models.Project,
	member *users_dto.SignInResponseDTO,
	role projects_enums.ProjectRole,
	inviterToken string,
	router *gin.Engine,
) {
	response := InviteMemberViaAPI(project, member.Email, role, inviterToken, router)
	AcceptInviteViaAPI(response.Invite.ID, member.Token, router)
}

func GetProjectMembersViaAPI(
	project *projects_models.Project,
	requesterToken string,
	router *gin.Engine,
) *projects_dto.GetMembersResponseDTO {
	w := MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+requesterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to get project members via API: " + w.Body.String())
	}

	var response projects_dto.GetMembersResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
