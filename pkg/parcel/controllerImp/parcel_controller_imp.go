package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"plantlog/entities"
	svc "plantlog/pkg/parcel/service"
)

type ParcelCtrl struct{ svc svc.ParcelService }

func New(s svc.ParcelService) *ParcelCtrl { return &ParcelCtrl{s} }

type createReq struct {
	Name        string  `json:"name"`
	SurfaceHa   float64 `json:"surface_ha"`
	Location    string  `json:"location"`
	SoilType    string  `json:"soil_type"`
	Description string  `json:"description"`
}

func (h *ParcelCtrl) Create(c echo.Context) error {
	ownerID := c.Get("account_id").(uint)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, err := h.svc.Create(ownerID, req.Name, req.SurfaceHa, req.Location, req.SoilType, req.Description)
	if err != nil {
		if errors.Is(err, entities.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]uint{"parcel_id": id})
}

func (h *ParcelCtrl) List(c echo.Context) error {
	ownerID := c.Get("account_id").(uint)
	parcels, err := h.svc.ListByOwner(ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, parcels)
}

func (h *ParcelCtrl) Get(c echo.Context) error {
	ownerID := c.Get("account_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.FindByID(uint(id), ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
