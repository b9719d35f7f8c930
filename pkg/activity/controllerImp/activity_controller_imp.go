package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"plantlog/entities"
	"plantlog/pkg/activity"
	"plantlog/pkg/activity/repository"
	parcelSvc "plantlog/pkg/parcel/service"
)

func knownActivityType(t string) bool {
	for _, s := range entities.ActivityTypes() {
		if s == t {
			return true
		}
	}
	return false
}

type ActivityCtrl struct {
	repo    repository.ActivityRepository
	parcels parcelSvc.ParcelService
}

func New(repo repository.ActivityRepository, parcels parcelSvc.ParcelService) *ActivityCtrl {
	return &ActivityCtrl{repo: repo, parcels: parcels}
}

type appendReq struct {
	ActivityType string   `json:"activity_type"`
	Date         string   `json:"date"` // 2006-01-02
	CropType     string   `json:"crop_type"`
	Variety      string   `json:"variety"`
	Quantity     *float64 `json:"quantity"`
	Unit         string   `json:"unit"`
	Notes        string   `json:"notes"`
	Cost         *float64 `json:"cost"`
	Weather      string   `json:"weather_conditions"`
}

func (h *ActivityCtrl) Append(c echo.Context) error {
	parcelID, err := h.ownedParcel(c)
	if err != nil {
		return notFoundOrServerErr(c, err)
	}
	var req appendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ActivityType == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "activity_type is required"})
	}
	// Free-typed categories collapse to Other, like parcel soil types.
	if !knownActivityType(req.ActivityType) {
		req.ActivityType = entities.ActivityOther
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	if (req.Quantity != nil && *req.Quantity < 0) || (req.Cost != nil && *req.Cost < 0) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity and cost must be non-negative"})
	}

	a := &entities.Activity{
		ParcelID:     parcelID,
		ActivityType: req.ActivityType,
		Date:         date,
		CropType:     req.CropType,
		Variety:      req.Variety,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Notes:        req.Notes,
		Cost:         req.Cost,
		Weather:      req.Weather,
	}
	if err := h.repo.Append(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

// List returns the parcel's history, newest first. Optional query params
// type, crop, from and to filter the fetched slice in memory.
func (h *ActivityCtrl) List(c echo.Context) error {
	parcelID, err := h.ownedParcel(c)
	if err != nil {
		return notFoundOrServerErr(c, err)
	}
	items, err := h.repo.ListByParcel(parcelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if t := c.QueryParam("type"); t != "" {
		items = activity.FilterByType(items, t)
	}
	if crop := c.QueryParam("crop"); crop != "" {
		items = activity.FilterByCrop(items, crop)
	}
	if fromStr, toStr := c.QueryParam("from"), c.QueryParam("to"); fromStr != "" || toStr != "" {
		from, to, err := parseRange(fromStr, toStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "from/to must be YYYY-MM-DD"})
		}
		items = activity.FilterByDateRange(items, from, to)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ActivityCtrl) ownedParcel(c echo.Context) (uint, error) {
	ownerID := c.Get("account_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.parcels.FindByID(uint(id), ownerID)
	if err != nil {
		return 0, err
	}
	return p.ParcelID, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	var err error
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return from, to, err
		}
	}
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func notFoundOrServerErr(c echo.Context, err error) error {
	if errors.Is(err, entities.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "parcel not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
