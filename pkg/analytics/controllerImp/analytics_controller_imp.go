package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"plantlog/entities"
	activityRepo "plantlog/pkg/activity/repository"
	"plantlog/pkg/analytics"
	parcelSvc "plantlog/pkg/parcel/service"
	"plantlog/pkg/reminder"
	reminderRepo "plantlog/pkg/reminder/repository"
)

type AnalyticsCtrl struct {
	parcels    parcelSvc.ParcelService
	activities activityRepo.ActivityRepository
	reminders  reminderRepo.ReminderRepository
}

func New(p parcelSvc.ParcelService, a activityRepo.ActivityRepository, r reminderRepo.ReminderRepository) *AnalyticsCtrl {
	return &AnalyticsCtrl{parcels: p, activities: a, reminders: r}
}

// Dashboard serves the header metrics plus the urgent-reminder list
// (pending, due within 3 days or past due).
func (h *AnalyticsCtrl) Dashboard(c echo.Context) error {
	parcels, activities, reminders, err := h.gather(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	today := time.Now()
	urgent := reminder.Urgent(reminders, today)
	type urgentView struct {
		entities.Reminder
		Urgency reminder.Urgency `json:"urgency"`
	}
	views := make([]urgentView, 0, len(urgent))
	for _, r := range urgent {
		views = append(views, urgentView{Reminder: r, Urgency: reminder.Classify(r.ReminderDate, today)})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"summary":          analytics.Summarize(parcels, activities, reminders, today),
		"urgent_reminders": views,
	})
}

func (h *AnalyticsCtrl) Analytics(c echo.Context) error {
	_, activities, _, err := h.gather(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	mode, _ := analytics.ModeType(activities)
	return c.JSON(http.StatusOK, map[string]any{
		"total_activities": len(activities),
		"costs":            analytics.Costs(activities),
		"mode_type":        mode,
		"by_type":          analytics.CountByType(activities),
		"monthly":          analytics.MonthlyRollup(activities),
		"crosstab":         analytics.CrossTabulate(activities),
	})
}

func (h *AnalyticsCtrl) Calendar(c echo.Context) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y := c.QueryParam("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			year = v
		}
	}
	if m := c.QueryParam("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "month must be 1-12"})
		}
		month = v
	}

	_, activities, reminders, err := h.gather(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, analytics.CalendarEntries(activities, reminders, year, month))
}

// gather pulls the caller's parcels with their activities and reminders.
func (h *AnalyticsCtrl) gather(c echo.Context) ([]entities.Parcel, []entities.Activity, []entities.Reminder, error) {
	ownerID := c.Get("account_id").(uint)
	parcels, err := h.parcels.ListByOwner(ownerID)
	if err != nil {
		return nil, nil, nil, err
	}
	var activities []entities.Activity
	var reminders []entities.Reminder
	for _, p := range parcels {
		acts, err := h.activities.ListByParcel(p.ParcelID)
		if err != nil {
			return nil, nil, nil, err
		}
		activities = append(activities, acts...)
		rems, err := h.reminders.ListByParcel(p.ParcelID)
		if err != nil {
			return nil, nil, nil, err
		}
		reminders = append(reminders, rems...)
	}
	return parcels, activities, reminders, nil
}
