package viewmodel

// FilterType narrows the collection by presence of external load.
type FilterType string

const (
	FilterAll        FilterType = "all"
	FilterWeighted   FilterType = "weighted"
	FilterBodyweight FilterType = "bodyweight"
)

// SortKey identifies the field a selection sorts by. SortNone keeps
// insertion order.
type SortKey string

const (
	SortNone   SortKey = ""
	SortName   SortKey = "name"
	SortSets   SortKey = "sets"
	SortWeight SortKey = "weight"
	SortDay    SortKey = "workout_day"
)

// SortDirection is the sort order for the selected key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// DayAll disables day filtering.
const DayAll = "all"

// Selection is the transient UI state driving one computation. It is a plain
// value: the hosting layer owns transitions, the view-model only reads it.
type Selection struct {
	Filter    FilterType    `json:"filter"`
	Search    string        `json:"search"`
	Day       string        `json:"day"`
	Sort      SortKey       `json:"sort"`
	Direction SortDirection `json:"direction"`
	Page      int           `json:"page"`
}

// DefaultSelection is the state a freshly mounted list starts from.
func DefaultSelection() Selection {
	return Selection{
		Filter: FilterAll,
		Day:    DayAll,
		Page:   1,
	}
}

// WithSort returns the selection after the user picks a sort key. Picking the
// key already in effect toggles the direction; picking a new key resets the
// direction to descending. SortNone clears sorting entirely.
func (s Selection) WithSort(key SortKey) Selection {
	if key == SortNone {
		s.Sort = SortNone
		s.Direction = ""
		return s
	}
	if s.Sort == key {
		if s.Direction == Descending {
			s.Direction = Ascending
		} else {
			s.Direction = Descending
		}
		return s
	}
	s.Sort = key
	s.Direction = Descending
	return s
}

// WithPage returns the selection on the requested page. Values below 1 snap
// to 1; the upper bound is clamped during computation.
func (s Selection) WithPage(page int) Selection {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// normalized fills zero values with their defaults so callers can pass a
// partially populated Selection (e.g. decoded from query parameters).
func (s Selection) normalized() Selection {
	if s.Filter == "" {
		s.Filter = FilterAll
	}
	if s.Day == "" {
		s.Day = DayAll
	}
	if s.Sort != SortNone && s.Direction == "" {
		s.Direction = Descending
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}
