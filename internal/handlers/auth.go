package handlers

import (
	"net/http"

	"shop_api/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the public user shape; the password hash never leaves the
// service layer.
type userPayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration payload"
// @Success      201   {object}  map[string]interface{}  "message, user"
// @Failure      422   {object}  map[string]interface{}  "message, errors"
// @Router       /v1/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.Authorization.Register(c.Request.Context(), service.RegisterParams{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		h.respondServiceError(c, err, "auth_register_failed", "email", req.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user":    userPayload{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// @Summary      Log in and receive a bearer token
// @Description  The plaintext token is returned exactly once and cannot be retrieved again.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "message, user, token"
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := validateLoginRequest(req); err != nil {
		h.respondServiceError(c, err, "auth_login_invalid")
		return
	}

	user, token, err := h.services.Authorization.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, err, "auth_login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully.",
		"user":    userPayload{ID: user.ID, Name: user.Name, Email: user.Email},
		"token":   token,
	})
}

// validateLoginRequest only checks presence; credential checking stays in the
// service so failures remain undifferentiated.
func validateLoginRequest(req loginRequest) error {
	ve := &service.ValidationError{Fields: map[string][]string{}}
	if req.Email == "" {
		ve.Fields["email"] = append(ve.Fields["email"], "The email field is required.")
	}
	if req.Password == "" {
		ve.Fields["password"] = append(ve.Fields["password"], "The password field is required.")
	}
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

// @Summary      Current authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/user [get]
// @Security     BearerAuth
func (h *Handler) currentUser(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": userPayload{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// @Summary      Log out (revokes every session token of the user)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	if err := h.services.Authorization.Logout(c.Request.Context(), user.ID); err != nil {
		h.respondServiceError(c, err, "auth_logout_failed", "user_id", user.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully."})
}
