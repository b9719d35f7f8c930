// Package analytics derives dashboard and report figures from activity
// and reminder slices the repositories already fetched. Nothing here
// touches the store.
package analytics

import (
	"sort"
	"time"

	"plantlog/entities"
)

// Summary backs the dashboard header cards.
type Summary struct {
	ParcelCount      int     `json:"parcel_count"`
	TotalSurfaceHa   float64 `json:"total_surface_ha"`
	RecentActivities int     `json:"recent_activities"`
	PendingReminders int     `json:"pending_reminders"`
}

func Summarize(parcels []entities.Parcel, activities []entities.Activity, reminders []entities.Reminder, today time.Time) Summary {
	total := 0.0
	for _, p := range parcels {
		total += p.SurfaceHa
	}
	return Summary{
		ParcelCount:      len(parcels),
		TotalSurfaceHa:   total,
		RecentActivities: RecentCount(activities, today),
		PendingReminders: PendingCount(reminders),
	}
}

// RecentCount counts activities dated within the trailing 7-day window
// ending today, both ends inclusive.
func RecentCount(activities []entities.Activity, today time.Time) int {
	hi := dateOnly(today)
	lo := hi.AddDate(0, 0, -7)
	n := 0
	for _, a := range activities {
		d := dateOnly(a.Date)
		if !d.Before(lo) && !d.After(hi) {
			n++
		}
	}
	return n
}

func PendingCount(reminders []entities.Reminder) int {
	n := 0
	for _, r := range reminders {
		if !r.IsCompleted {
			n++
		}
	}
	return n
}

// CostStats sums every recorded cost and averages the cost-bearing
// entries (cost > 0). OK is false when nothing carries a cost, so callers
// can show "no data" instead of a zero.
type CostStats struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	OK      bool    `json:"ok"`
}

func Costs(activities []entities.Activity) CostStats {
	var total float64
	var bearing int
	var bearingSum float64
	for _, a := range activities {
		if a.Cost == nil {
			continue
		}
		total += *a.Cost
		if *a.Cost > 0 {
			bearing++
			bearingSum += *a.Cost
		}
	}
	if bearing == 0 {
		return CostStats{}
	}
	return CostStats{Total: total, Average: bearingSum / float64(bearing), OK: true}
}

// TypeCount is one slice of the activity-type breakdown, in
// first-encountered order.
type TypeCount struct {
	ActivityType string `json:"activity_type"`
	Count        int    `json:"count"`
}

func CountByType(activities []entities.Activity) []TypeCount {
	idx := map[string]int{}
	out := []TypeCount{}
	for _, a := range activities {
		i, seen := idx[a.ActivityType]
		if !seen {
			idx[a.ActivityType] = len(out)
			out = append(out, TypeCount{ActivityType: a.ActivityType})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

// ModeType is the most frequent activity type; ties go to the type seen
// first. Empty input yields ok=false.
func ModeType(activities []entities.Activity) (string, bool) {
	counts := CountByType(activities)
	if len(counts) == 0 {
		return "", false
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.ActivityType, true
}

// MonthlyPoint is one occupied (year, month) bucket; months with no
// activity produce no point.
type MonthlyPoint struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

func MonthlyRollup(activities []entities.Activity) []MonthlyPoint {
	type key struct{ y, m int }
	buckets := map[key]*MonthlyPoint{}
	for _, a := range activities {
		k := key{a.Date.Year(), int(a.Date.Month())}
		p, ok := buckets[k]
		if !ok {
			p = &MonthlyPoint{Year: k.y, Month: k.m}
			buckets[k] = p
		}
		p.Count++
		if a.Cost != nil {
			p.TotalCost += *a.Cost
		}
	}

	out := make([]MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// CrossTab is the activity-type × month grid behind the heatmap view.
// Rows follow first-encountered type order, columns are the occupied
// months in calendar order, and cells with no occurrences hold zero.
type CrossTab struct {
	Types  []string `json:"types"`
	Months []int    `json:"months"`
	Cells  [][]int  `json:"cells"` // Cells[i][j]: count of Types[i] in Months[j]
}

func CrossTabulate(activities []entities.Activity) CrossTab {
	typeIdx := map[string]int{}
	types := []string{}
	monthSet := map[int]bool{}
	for _, a := range activities {
		if _, ok := typeIdx[a.ActivityType]; !ok {
			typeIdx[a.ActivityType] = len(types)
			types = append(types, a.ActivityType)
		}
		monthSet[int(a.Date.Month())] = true
	}
	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)
	monthIdx := map[int]int{}
	for j, m := range months {
		monthIdx[m] = j
	}

	cells := make([][]int, len(types))
	for i := range cells {
		cells[i] = make([]int, len(months))
	}
	for _, a := range activities {
		cells[typeIdx[a.ActivityType]][monthIdx[int(a.Date.Month())]]++
	}
	return CrossTab{Types: types, Months: months, Cells: cells}
}

// CalendarEntry merges activities and reminders for the month view.
type CalendarEntry struct {
	Date      time.Time `json:"date"`
	Kind      string    `json:"kind"` // activity|reminder
	Title     string    `json:"title"`
	ParcelID  uint      `json:"parcel_id"`
	Completed bool      `json:"completed,omitempty"`
}

func CalendarEntries(activities []entities.Activity, reminders []entities.Reminder, year, month int) []CalendarEntry {
	out := []CalendarEntry{}
	for _, a := range activities {
		if a.Date.Year() == year && int(a.Date.Month()) == month {
			out = append(out, CalendarEntry{Date: a.Date, Kind: "activity", Title: a.ActivityType, ParcelID: a.ParcelID})
		}
	}
	for _, r := range reminders {
		if r.ReminderDate.Year() == year && int(r.ReminderDate.Month()) == month {
			out = append(out, CalendarEntry{Date: r.ReminderDate, Kind: "reminder", Title: r.Title, ParcelID: r.ParcelID, Completed: r.IsCompleted})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
