package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/server/middleware"
	"github.com/partshub/catalog-service/internal/usecase"
)

type AuthController interface {
	Signup(c echo.Context) error
	Login(c echo.Context) error
	GetProfile(c echo.Context) error
}

type authController struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthController(authUsecase usecase.AuthUsecase) AuthController {
	return &authController{
		authUsecase: authUsecase,
	}
}

func (ac *authController) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := ac.authUsecase.Signup(c.Request().Context(), req)
	if errors.Is(err, models.ErrDuplicateEmail) {
		return echo.NewHTTPError(http.StatusConflict, "user with this email already exists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "account created successfully",
		"data":    resp,
	})
}

func (ac *authController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := ac.authUsecase.Login(c.Request().Context(), req)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    resp,
	})
}

func (ac *authController) GetProfile(c echo.Context) error {
	user := middleware.GetUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    user,
	})
}
