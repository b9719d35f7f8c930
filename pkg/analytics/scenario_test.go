package analytics_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantlog/database"
	"plantlog/entities"
	actRepoImp "plantlog/pkg/activity/repositoryImp"
	"plantlog/pkg/analytics"
	authRepoImp "plantlog/pkg/auth/repositoryImp"
	authSvcImp "plantlog/pkg/auth/serviceImp"
	parcelRepoImp "plantlog/pkg/parcel/repositoryImp"
	parcelSvcImp "plantlog/pkg/parcel/serviceImp"
	"plantlog/pkg/reminder"
	remRepoImp "plantlog/pkg/reminder/repositoryImp"
)

// Walks one journal session end to end through the real stack: register,
// create a parcel, log an activity, schedule a reminder, then check the
// derived views.
func TestJournalSession(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	auth := authSvcImp.New(authRepoImp.New(db))
	parcels := parcelSvcImp.New(parcelRepoImp.New(db))
	activities := actRepoImp.New(db)
	reminders := remRepoImp.New(db)

	accountID, err := auth.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)

	parcelID, err := parcels.Create(accountID, "North Field", 2.5, "Hillside", entities.SoilClay, "")
	require.NoError(t, err)

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cost := 12.5
	require.NoError(t, activities.Append(&entities.Activity{
		ParcelID: parcelID, ActivityType: entities.ActivityPlanting,
		Date: today, Cost: &cost,
	}))
	require.NoError(t, reminders.Schedule(&entities.Reminder{
		ParcelID: parcelID, ActivityType: entities.ActivityWatering,
		ReminderDate: today.AddDate(0, 0, 1), Title: "Water",
	}))

	acts, err := activities.ListByParcel(parcelID)
	require.NoError(t, err)
	assert.Len(t, acts, 1)

	rems, err := reminders.ListByParcel(parcelID)
	require.NoError(t, err)
	require.Len(t, rems, 1)
	assert.Equal(t, 1, analytics.PendingCount(rems))
	assert.Equal(t, reminder.DueSoon, reminder.Classify(rems[0].ReminderDate, today))

	costs := analytics.Costs(acts)
	require.True(t, costs.OK)
	assert.Equal(t, 12.5, costs.Total)
}
