package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
)

type PartsController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	FilterOptions(c echo.Context) error
	Seed(c echo.Context) error
}

type partsController struct {
	partsUsecase usecase.PartsUsecase
}

func NewPartsController(partsUsecase usecase.PartsUsecase) PartsController {
	return &partsController{
		partsUsecase: partsUsecase,
	}
}

func (pc *partsController) List(c echo.Context) error {
	var query models.ListPartsQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := pc.partsUsecase.List(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (pc *partsController) Get(c echo.Context) error {
	part, err := pc.partsUsecase.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "part not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, models.PartResponse{Success: true, Data: part})
}

func (pc *partsController) Create(c echo.Context) error {
	var req models.PartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	part, err := pc.partsUsecase.Create(c.Request().Context(), req)
	if errors.Is(err, models.ErrDuplicatePart) {
		return echo.NewHTTPError(http.StatusConflict, "part number already exists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, models.PartResponse{
		Success: true,
		Data:    part,
		Message: "part created successfully",
	})
}

func (pc *partsController) Update(c echo.Context) error {
	var req models.PartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	part, err := pc.partsUsecase.Update(c.Request().Context(), c.Param("id"), req)
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "part not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, models.PartResponse{
		Success: true,
		Data:    part,
		Message: "part updated successfully",
	})
}

func (pc *partsController) Delete(c echo.Context) error {
	err := pc.partsUsecase.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "part not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, models.PartResponse{
		Success: true,
		Message: "part deleted successfully",
	})
}

func (pc *partsController) FilterOptions(c echo.Context) error {
	options, err := pc.partsUsecase.FilterOptions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    options,
	})
}

func (pc *partsController) Seed(c echo.Context) error {
	count, err := pc.partsUsecase.Seed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "catalog seeded",
		"count":   count,
	})
}
