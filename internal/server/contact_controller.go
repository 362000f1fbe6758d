package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
)

type ContactController interface {
	Submit(c echo.Context) error
}

type contactController struct {
	contactUsecase usecase.ContactUsecase
}

func NewContactController(contactUsecase usecase.ContactUsecase) ContactController {
	return &contactController{
		contactUsecase: contactUsecase,
	}
}

func (cc *contactController) Submit(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := cc.contactUsecase.Submit(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "thank you for contacting us, we will get back to you shortly",
		"data":    msg,
	})
}
