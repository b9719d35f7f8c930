package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"plantlog/entities"
	activityRepo "plantlog/pkg/activity/repository"
	"plantlog/pkg/export"
	parcelSvc "plantlog/pkg/parcel/service"
)

type ExportCtrl struct {
	parcels    parcelSvc.ParcelService
	activities activityRepo.ActivityRepository
}

func New(p parcelSvc.ParcelService, a activityRepo.ActivityRepository) *ExportCtrl {
	return &ExportCtrl{parcels: p, activities: a}
}

func (h *ExportCtrl) Activities(c echo.Context) error {
	ownerID := c.Get("account_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.parcels.FindByID(uint(id), ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "parcel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	items, err := h.activities.ListByParcel(p.ParcelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f, err := export.ActivityWorkbook("Activities", items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-activities.xlsx"`, p.Name))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
