package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessionusecases "fieldesk/internal/application/session/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type AuthHandler struct {
	signInUC    sessionusecases.SignInExecutor
	registerUC  sessionusecases.RegisterExecutor
	enterDemoUC sessionusecases.EnterDemoExecutor
	refreshUC   sessionusecases.RefreshTokenExecutor
	signOutUC   sessionusecases.SignOutExecutor
	logger      logger.Interface
}

func NewAuthHandler(
	signInUC sessionusecases.SignInExecutor,
	registerUC sessionusecases.RegisterExecutor,
	enterDemoUC sessionusecases.EnterDemoExecutor,
	refreshUC sessionusecases.RefreshTokenExecutor,
	signOutUC sessionusecases.SignOutExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signInUC:    signInUC,
		registerUC:  registerUC,
		enterDemoUC: enterDemoUC,
		refreshUC:   refreshUC,
		signOutUC:   signOutUC,
		logger:      log,
	}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type enterDemoRequest struct {
	Role     string `json:"role" binding:"required"`
	ClientID *uint  `json:"client_id"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type sessionResponse struct {
	ProfileID    uint   `json:"profile_id,omitempty"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	ClientID     *uint  `json:"client_id,omitempty"`
	Simulated    bool   `json:"simulated"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// SignIn handles POST /api/auth/login
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.signInUC.Execute(c.Request.Context(), sessionusecases.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "signed in", sessionResponse{
		ProfileID:    result.Profile.ID(),
		FullName:     result.Profile.FullName(),
		Email:        result.Profile.Email(),
		Role:         result.Profile.Role().String(),
		ClientID:     result.Profile.ClientID(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email, password and full_name are required")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), sessionusecases.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, sessionResponse{
		ProfileID:    result.Profile.ID(),
		FullName:     result.Profile.FullName(),
		Email:        result.Profile.Email(),
		Role:         result.Profile.Role().String(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, "registered")
}

// EnterDemo handles POST /api/auth/demo
func (h *AuthHandler) EnterDemo(c *gin.Context) {
	var req enterDemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "role is required")
		return
	}

	result, err := h.enterDemoUC.Execute(c.Request.Context(), sessionusecases.EnterDemoCommand{
		Role:     req.Role,
		ClientID: req.ClientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "demo session created", sessionResponse{
		FullName:    result.FullName,
		Email:       result.Email,
		Role:        result.Role.String(),
		Simulated:   true,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), sessionusecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", sessionResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// SignOut handles POST /api/auth/logout
func (h *AuthHandler) SignOut(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	if err := h.signOutUC.Execute(c.Request.Context(), s); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "signed out", nil)
}

// CurrentSession handles GET /api/auth/session
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sessionResponse{
		ProfileID: s.ProfileID,
		FullName:  s.FullName,
		Email:     s.Email,
		Role:      s.Role.String(),
		ClientID:  s.ClientID,
		Simulated: s.Simulated(),
	})
}
