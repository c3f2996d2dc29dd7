package models

import "time"

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// DayOrder is the canonical display order. Weeks start on Monday regardless
// of locale.
var DayOrder = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Day) Valid() bool {
	for _, o := range DayOrder {
		if d == o {
			return true
		}
	}
	return false
}

// ScheduleSlot is one weekly occurrence of a class, denormalized with the
// referenced class at read time. ClassID is empty when the reference is gone.
type ScheduleSlot struct {
	Key         string `json:"key"`
	Day         Day    `json:"day"`
	Time        string `json:"time"`
	ClassID     string `json:"class_id,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	ClassActive bool   `json:"-"`
	Price       int    `json:"price"`
	SalePrice   *int   `json:"sale_price,omitempty"`
	BookingURL  string `json:"booking_url,omitempty"`
}

type NoticeStyle string

const (
	StyleCelebration NoticeStyle = "celebration"
	StyleInfo        NoticeStyle = "info"
	StyleWarning     NoticeStyle = "warning"
	StyleNew         NoticeStyle = "new"
)

// ScheduleNotice is an announcement card above the schedule. Start and end
// dates are calendar dates; nil means open-ended.
type ScheduleNotice struct {
	Key       string      `json:"key"`
	Active    bool        `json:"active"`
	Style     NoticeStyle `json:"style"`
	Emoji     string      `json:"emoji,omitempty"`
	Title     string      `json:"title"`
	Body      string      `json:"body,omitempty"`
	LinkURL   string      `json:"link_url,omitempty"`
	LinkLabel string      `json:"link_label,omitempty"`
	StartDate *time.Time  `json:"start_date,omitempty"`
	EndDate   *time.Time  `json:"end_date,omitempty"`
}

type WeeklySchedule struct {
	Slots   []ScheduleSlot
	Notices []ScheduleNotice
}
