package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrotec/equipos-api/internal/api/metrics"
	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirstName      string `json:"nombre"    validate:"required"`
	LastName       string `json:"apellido"  validate:"required"`
	Email          string `json:"email"     validate:"required,email"`
	Password       string `json:"password"  validate:"required,min=6"`
	Phone          string `json:"telefono"  validate:"required,numeric,min=8,max=15"`
	Role           string `json:"rol"       validate:"required"`
	CompanyTaxID   string `json:"rut_empresa"`
	CompanyName    string `json:"nombre_empresa"`
	CompanyAddress string `json:"direccion_empresa"`
}

type registerResponse struct {
	ID int64 `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Role      string `json:"rol"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"usuario"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/usuarios/registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Role:           req.Role,
		CompanyTaxID:   req.CompanyTaxID,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrInvalidRole),
			errors.Is(err, domain.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, registerResponse{ID: id})
}

// Login authenticates a user and returns a signed session token.
//
// "user not found" and "incorrect password" stay distinct responses,
// matching the contract existing clients depend on.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/usuarios/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: signed,
		User: userSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.RoleName,
		},
	})
}
