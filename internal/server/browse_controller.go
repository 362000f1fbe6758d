package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
)

type BrowseController interface {
	CreateSession(c echo.Context) error
	GetState(c echo.Context) error
	UpdateFilters(c echo.Context) error
	ClearFilters(c echo.Context) error
	GoToPage(c echo.Context) error
	SelectPart(c echo.Context) error
	Refresh(c echo.Context) error
	CloseSession(c echo.Context) error
}

type browseController struct {
	browseUsecase usecase.BrowseUsecase
}

func NewBrowseController(browseUsecase usecase.BrowseUsecase) BrowseController {
	return &browseController{
		browseUsecase: browseUsecase,
	}
}

func (bc *browseController) CreateSession(c echo.Context) error {
	id, state, err := bc.browseUsecase.CreateSession(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"sessionId": id,
		"state":     state,
	})
}

func (bc *browseController) GetState(c echo.Context) error {
	state, err := bc.browseUsecase.GetState(c.Request().Context(), c.Param("id"))
	return bc.respond(c, state, err)
}

func (bc *browseController) UpdateFilters(c echo.Context) error {
	var req models.BrowseFiltersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, err := bc.browseUsecase.UpdateFilters(c.Request().Context(), c.Param("id"), req)
	return bc.respond(c, state, err)
}

func (bc *browseController) ClearFilters(c echo.Context) error {
	state, err := bc.browseUsecase.ClearFilters(c.Request().Context(), c.Param("id"))
	return bc.respond(c, state, err)
}

func (bc *browseController) GoToPage(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page number")
	}

	state, err := bc.browseUsecase.GoToPage(c.Request().Context(), c.Param("id"), page)
	return bc.respond(c, state, err)
}

func (bc *browseController) SelectPart(c echo.Context) error {
	state, err := bc.browseUsecase.SelectPart(c.Request().Context(), c.Param("id"), c.Param("partId"))
	return bc.respond(c, state, err)
}

func (bc *browseController) Refresh(c echo.Context) error {
	state, err := bc.browseUsecase.Refresh(c.Request().Context(), c.Param("id"))
	return bc.respond(c, state, err)
}

func (bc *browseController) CloseSession(c echo.Context) error {
	err := bc.browseUsecase.CloseSession(c.Request().Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (bc *browseController) respond(c echo.Context, state any, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"state":   state,
	})
}
