package catalog

// YearGroups describes who an activity is offered to. Labels are exact
// year labels ("Reception", "Year 3", ...); Min/Max is an inclusive numeric
// range and is only meaningful when both bounds are set.
type YearGroups struct {
	Min    *int     `json:"min" yaml:"min"`
	Max    *int     `json:"max" yaml:"max"`
	Labels []string `json:"labels" yaml:"labels"`
	Raw    string   `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// HasRange reports whether both numeric bounds are present.
func (y YearGroups) HasRange() bool {
	return y.Min != nil && y.Max != nil
}

// HasLabel reports whether label is one of the exact year labels.
func (y YearGroups) HasLabel(label string) bool {
	for _, l := range y.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// TimeRange holds "HH:MM" 24-hour strings. An empty Start means the
// activity is unscheduled.
type TimeRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Raw   string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

type Schedule struct {
	Days []string  `json:"days" yaml:"days"`
	Time TimeRange `json:"time" yaml:"time"`
}

// RunsOn reports whether the activity recurs on day.
func (s Schedule) RunsOn(day string) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

type Capacity struct {
	Min *int `json:"min" yaml:"min"`
	Max *int `json:"max" yaml:"max"`
}

// Activity is one catalog entry. Category, gender and language-support
// status are derived from ID and Name by the eca package and are never
// stored here.
type Activity struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	NameOriginal string     `json:"nameOriginal,omitempty" yaml:"nameOriginal,omitempty"`
	Category     string     `json:"category,omitempty" yaml:"category,omitempty"`
	Level        string     `json:"level,omitempty" yaml:"level,omitempty"`
	Fee          int        `json:"fee" yaml:"fee"`
	IsFree       bool       `json:"isFree" yaml:"isFree"`
	YearGroups   YearGroups `json:"yearGroups" yaml:"yearGroups"`
	Schedule     Schedule   `json:"schedule" yaml:"schedule"`
	Location     string     `json:"location,omitempty" yaml:"location,omitempty"`
	Teachers     []string   `json:"teachers,omitempty" yaml:"teachers,omitempty"`
	Capacity     Capacity   `json:"capacity" yaml:"capacity"`
	InviteOnly   bool       `json:"inviteOnly" yaml:"inviteOnly"`
	Provider     string     `json:"provider,omitempty" yaml:"provider,omitempty"`
	Section      string     `json:"section,omitempty" yaml:"section,omitempty"`
}

// Scheduled reports whether the activity has a start time.
func (a Activity) Scheduled() bool {
	return a.Schedule.Time.Start != ""
}
