package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/handler/http/middleware"
	"github.com/tagtrack/tagtrack-backend-go/internal/handler/http/response"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	RegisterManager(w http.ResponseWriter, r *http.Request)
	RegisterEmployee(w http.ResponseWriter, r *http.Request)
	LoginManager(w http.ResponseWriter, r *http.Request)
	LoginEmployee(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request)
	GetPendingEmployees(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

// RegisterManager implements AuthHandler.
func (a *AuthHandlerImpl) RegisterManager(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterManagerRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterManager decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := registerReq.Validate(); err != nil {
		slog.Error("RegisterManager validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := a.authService.RegisterManager(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Manager registered successfully", "manager_id", created.ID)
	response.Created(w, "Manager registered successfully", manager.ToResponse(created))
}

// RegisterEmployee implements AuthHandler.
func (a *AuthHandlerImpl) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := registerReq.Validate(); err != nil {
		slog.Error("RegisterEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := a.authService.RegisterEmployee(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Employee registered successfully", "employee_id", created.ID)
	response.Created(w, "Registration successful, awaiting manager approval", employee.ToResponse(created))
}

// LoginManager implements AuthHandler.
func (a *AuthHandlerImpl) LoginManager(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginManager decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("LoginManager validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	loggedIn, token, err := a.authService.LoginManager(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Manager logged in successfully", "manager_id", loggedIn.ID)
	response.SuccessWithMessage(w, "Login successful", auth.ManagerLoginResponse{
		User:  manager.ToResponse(loggedIn),
		Token: token,
		Role:  string(auth.RoleManager),
	})
}

// LoginEmployee implements AuthHandler.
func (a *AuthHandlerImpl) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("LoginEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	loggedIn, token, err := a.authService.LoginEmployee(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Employee logged in successfully", "employee_id", loggedIn.ID)
	response.SuccessWithMessage(w, "Login successful", auth.EmployeeLoginResponse{
		User:  employee.ToResponse(loggedIn),
		Token: token,
		Role:  string(auth.RoleEmployee),
	})
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	url := a.googleService.RedirectURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	// Helper function to redirect to frontend with error
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateReq.Value {
		slog.Error("State mismatch in OAuth callback")
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty in OAuth callback")
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.ExchangeCode(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange OAuth code", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	userGoogle, err := a.googleService.FetchUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to fetch Google user", "error", err)
		redirectWithError("user_verification_failed")
		return
	}
	if !userGoogle.VerifiedEmail {
		slog.Error("Google email not verified", "email", userGoogle.Email)
		redirectWithError("email_not_verified")
		return
	}

	_, bearerToken, err := a.authService.LoginManagerWithGoogle(r.Context(), userGoogle.Email, userGoogle.GoogleID)
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		redirectWithError("login_failed")
		return
	}

	slog.Info("Manager logged in successfully via Google OAuth")

	// Redirect to frontend with the bearer token
	redirectURL := fmt.Sprintf("%s/auth/callback/google?token=%s",
		a.frontendURL,
		url.QueryEscape(bearerToken),
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// UpdateEmployeeStatus implements AuthHandler. The acting manager comes from
// the verified token, never from the request body.
func (a *AuthHandlerImpl) UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq auth.UpdateEmployeeStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployeeStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateEmployeeStatus validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := a.authService.UpdateEmployeeStatus(r.Context(), updateReq, identity.UserID)
	if err != nil {
		slog.Error("UpdateEmployeeStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Employee status updated", "employee_id", updated.ID, "status", updated.Status)
	response.SuccessWithMessage(w, "Employee status updated successfully", employee.ToResponse(updated))
}

// GetPendingEmployees implements AuthHandler.
func (a *AuthHandlerImpl) GetPendingEmployees(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	pending, err := a.authService.GetPendingEmployees(r.Context(), identity.UserID)
	if err != nil {
		slog.Error("GetPendingEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponses(pending))
}
