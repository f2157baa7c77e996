// Package viewmodel turns the full exercise collection plus the current UI
// selection into a display-ready page: filtered and sorted records, pagination
// metadata, and aggregate metrics over the filtered set. The computation is
// pure (same inputs, same output) so the HTTP, MCP, and export surfaces all
// share it.
package viewmodel

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/claude/workout-tracker/internal/models"
)

// PageSize is the fixed number of records per page.
const PageSize = 10

// Result is the display-ready output of one computation.
type Result struct {
	Items      []models.Exercise `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Metrics    Metrics           `json:"metrics"`
}

// Metrics aggregates the filtered set, not just the visible page.
type Metrics struct {
	ExerciseCount int          `json:"exercise_count"`
	TotalSets     int          `json:"total_sets"`
	TotalVolume   float64      `json:"total_volume"`
	WeightedCount int          `json:"weighted_count"`
	Days          []DayMetrics `json:"days"`
}

// DayMetrics tallies one workout day bucket. The literal day "None" is its
// own bucket, distinct from the lettered days.
type DayMetrics struct {
	Day         string  `json:"day"`
	Count       int     `json:"count"`
	TotalSets   int     `json:"total_sets"`
	TotalVolume float64 `json:"total_volume"`
}

// Compute runs the full pipeline: filter, sort, aggregate, paginate.
func Compute(records []models.Exercise, sel Selection) Result {
	sel = sel.normalized()

	filtered := Filtered(records, sel)

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := sel.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]models.Exercise, end-start)
	copy(items, filtered[start:end])

	return Result{
		Items:      items,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
		Metrics:    Aggregate(filtered),
	}
}

// Filtered returns the filtered, sorted list without pagination. The export
// surface consumes this directly.
func Filtered(records []models.Exercise, sel Selection) []models.Exercise {
	sel = sel.normalized()

	out := make([]models.Exercise, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(sel.Search))
	for _, e := range records {
		switch sel.Filter {
		case FilterWeighted:
			if e.Weight == nil {
				continue
			}
		case FilterBodyweight:
			if e.Weight != nil {
				continue
			}
		}
		if sel.Day != DayAll && e.WorkoutDay != sel.Day {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		out = append(out, e)
	}

	Sort(out, sel.Sort, sel.Direction)
	return out
}

// Sort stably sorts records in place by the given key. SortNone is a no-op:
// insertion order is kept. Records with a nil weight always sort after records
// with a present weight, in both directions; this is a deliberate UX policy,
// not a symmetric null ordering.
func Sort(records []models.Exercise, key SortKey, dir SortDirection) {
	if key == SortNone {
		return
	}
	if dir == "" {
		dir = Descending
	}
	col := collate.New(language.Und)
	sort.SliceStable(records, func(i, j int) bool {
		return less(col, records[i], records[j], key, dir)
	})
}

func less(col *collate.Collator, a, b models.Exercise, key SortKey, dir SortDirection) bool {
	// The nil-weight sink is direction-invariant.
	if key == SortWeight {
		switch {
		case a.Weight == nil && b.Weight == nil:
			return false
		case a.Weight == nil:
			return false
		case b.Weight == nil:
			return true
		}
	}

	var c int
	switch key {
	case SortName:
		c = col.CompareString(a.Name, b.Name)
	case SortSets:
		c = compareInt(a.Sets, b.Sets)
	case SortWeight:
		c = compareFloat(*a.Weight, *b.Weight)
	case SortDay:
		c = col.CompareString(a.WorkoutDay, b.WorkoutDay)
	}
	if dir == Descending {
		c = -c
	}
	return c < 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Aggregate computes metrics over a filtered set.
func Aggregate(records []models.Exercise) Metrics {
	m := Metrics{}
	byDay := make(map[string]*DayMetrics)
	for _, e := range records {
		m.ExerciseCount++
		m.TotalSets += e.Sets
		m.TotalVolume += e.Volume()
		if e.Weight != nil {
			m.WeightedCount++
		}

		d, ok := byDay[e.WorkoutDay]
		if !ok {
			d = &DayMetrics{Day: e.WorkoutDay}
			byDay[e.WorkoutDay] = d
		}
		d.Count++
		d.TotalSets += e.Sets
		d.TotalVolume += e.Volume()
	}

	// Canonical bucket order: A..G, then the daily/unassigned bucket.
	for _, day := range models.WorkoutDays {
		if d, ok := byDay[day]; ok {
			m.Days = append(m.Days, *d)
		}
	}
	return m
}
