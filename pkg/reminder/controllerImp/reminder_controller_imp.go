package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"plantlog/entities"
	parcelSvc "plantlog/pkg/parcel/service"
	"plantlog/pkg/reminder"
	"plantlog/pkg/reminder/repository"
)

type ReminderCtrl struct {
	repo    repository.ReminderRepository
	parcels parcelSvc.ParcelService
}

func New(repo repository.ReminderRepository, parcels parcelSvc.ParcelService) *ReminderCtrl {
	return &ReminderCtrl{repo: repo, parcels: parcels}
}

type scheduleReq struct {
	ActivityType string `json:"activity_type"`
	ReminderDate string `json:"reminder_date"` // 2006-01-02, past dates allowed
	Title        string `json:"title"`
	Description  string `json:"description"`
}

func (h *ReminderCtrl) Schedule(c echo.Context) error {
	parcelID, err := h.ownedParcel(c)
	if err != nil {
		return notFoundOrServerErr(c, err, "parcel not found")
	}
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ActivityType == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "activity_type and title are required"})
	}
	date, err := time.Parse("2006-01-02", req.ReminderDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "reminder_date must be YYYY-MM-DD"})
	}

	r := &entities.Reminder{
		ParcelID:     parcelID,
		ActivityType: req.ActivityType,
		ReminderDate: date,
		Title:        req.Title,
		Description:  req.Description,
	}
	if err := h.repo.Schedule(r); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, r)
}

type reminderView struct {
	entities.Reminder
	Urgency reminder.Urgency `json:"urgency,omitempty"`
}

// List returns the parcel's reminders date-ascending. Pending entries get
// an urgency tier; completed ones are listed without one.
func (h *ReminderCtrl) List(c echo.Context) error {
	parcelID, err := h.ownedParcel(c)
	if err != nil {
		return notFoundOrServerErr(c, err, "parcel not found")
	}
	items, err := h.repo.ListByParcel(parcelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	today := time.Now()
	views := make([]reminderView, 0, len(items))
	for _, r := range items {
		v := reminderView{Reminder: r}
		if !r.IsCompleted {
			v.Urgency = reminder.Classify(r.ReminderDate, today)
		}
		views = append(views, v)
	}
	return c.JSON(http.StatusOK, views)
}

// Complete marks the reminder done. The reminder's parcel must belong to
// the caller; a reminder on someone else's parcel looks like a missing one.
func (h *ReminderCtrl) Complete(c echo.Context) error {
	ownerID := c.Get("account_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	rem, err := h.repo.FindByID(uint(id))
	if err != nil {
		return notFoundOrServerErr(c, err, "reminder not found")
	}
	if _, err := h.parcels.FindByID(rem.ParcelID, ownerID); err != nil {
		return notFoundOrServerErr(c, err, "reminder not found")
	}

	if err := h.repo.Complete(rem.ReminderID); err != nil {
		return notFoundOrServerErr(c, err, "reminder not found")
	}
	return c.JSON(http.StatusOK, map[string]bool{"completed": true})
}

func (h *ReminderCtrl) ownedParcel(c echo.Context) (uint, error) {
	ownerID := c.Get("account_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.parcels.FindByID(uint(id), ownerID)
	if err != nil {
		return 0, err
	}
	return p.ParcelID, nil
}

func notFoundOrServerErr(c echo.Context, err error, msg string) error {
	if errors.Is(err, entities.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
