package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
)

const userContextKey = "user"

func JWTAuth(authUsecase usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			ctx := c.Request().Context()
			user, err := authUsecase.ValidateToken(ctx, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Store user in context for downstream handlers
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func GetUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func GetUserID(c echo.Context) string {
	if user := GetUser(c); user != nil {
		return user.ID.String()
	}
	return ""
}
