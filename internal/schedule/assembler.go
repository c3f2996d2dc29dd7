package schedule

import "github.com/c4flow/studio-service/internal/models"

type DaySchedule struct {
	Day   models.Day            `json:"day"`
	Slots []models.ScheduleSlot `json:"slots"`
}

// AssembleSchedule groups slots by day in Monday..Sunday order. Within a day
// the authored order is kept; time labels are free-form and never sorted.
// Slots with an unknown day or without a live class are dropped. A nil result
// means there is nothing to render.
func AssembleSchedule(slots []models.ScheduleSlot) []DaySchedule {
	if len(slots) == 0 {
		return nil
	}

	byDay := make(map[models.Day][]models.ScheduleSlot, len(models.DayOrder))
	for _, s := range slots {
		if !s.Day.Valid() || !hasLiveClass(s) {
			continue
		}
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	var out []DaySchedule
	for _, d := range models.DayOrder {
		if ss := byDay[d]; len(ss) > 0 {
			out = append(out, DaySchedule{Day: d, Slots: ss})
		}
	}
	return out
}

func hasLiveClass(s models.ScheduleSlot) bool {
	return s.ClassID != "" && s.ClassActive
}
