package schedule

import (
	"strings"
	"time"

	"github.com/c4flow/studio-service/internal/models"
)

const (
	BannerNoticeKey   = "__banner-promo__"
	bannerNoticeEmoji = "💸"
	bannerLinkLabel   = "Book Now"
	defaultLinkLabel  = "Learn More"
)

var defaultEmoji = map[models.NoticeStyle]string{
	models.StyleCelebration: "🎉",
	models.StyleInfo:        "ℹ️",
	models.StyleWarning:     "⚠️",
	models.StyleNew:         "🆕",
}

// IsNoticeVisible reports whether notice is active and today falls inside its
// inclusive [StartDate, EndDate] window. Only calendar dates are compared;
// today is taken in its own location.
func IsNoticeVisible(notice models.ScheduleNotice, today time.Time) bool {
	if !notice.Active {
		return false
	}
	d := dateOf(today)
	if notice.StartDate != nil && d.Before(dateOf(*notice.StartDate)) {
		return false
	}
	if notice.EndDate != nil && d.After(dateOf(*notice.EndDate)) {
		return false
	}
	return true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SynthesizeBannerNotice turns a banner that opted into the schedule into an
// undated celebration notice. It returns nil otherwise.
func SynthesizeBannerNotice(banner *models.BannerPromotion) *models.ScheduleNotice {
	if banner == nil || !banner.Enabled || !banner.ShowInSchedule || banner.BannerText == "" {
		return nil
	}
	n := &models.ScheduleNotice{
		Key:    BannerNoticeKey,
		Active: true,
		Style:  models.StyleCelebration,
		Emoji:  bannerNoticeEmoji,
		Title:  banner.BannerText,
		Body:   banner.ScheduleNoticeText,
	}
	if banner.Link != "" {
		n.LinkURL = banner.Link
		n.LinkLabel = bannerLinkLabel
	}
	return n
}

// VisibleNotices is the banner notice (if any) followed by the authored
// notices visible on today, in authored order. Nil means render nothing.
func VisibleNotices(banner *models.BannerPromotion, notices []models.ScheduleNotice, today time.Time) []models.ScheduleNotice {
	var out []models.ScheduleNotice
	if n := SynthesizeBannerNotice(banner); n != nil {
		out = append(out, *n)
	}
	for _, n := range notices {
		if IsNoticeVisible(n, today) {
			out = append(out, n)
		}
	}
	return out
}

// NoticeCard is a notice with its display defaults filled in.
type NoticeCard struct {
	Key          string             `json:"key"`
	Style        models.NoticeStyle `json:"style"`
	Emoji        string             `json:"emoji"`
	Title        string             `json:"title"`
	Body         string             `json:"body,omitempty"`
	LinkURL      string             `json:"link_url,omitempty"`
	LinkLabel    string             `json:"link_label,omitempty"`
	LinkExternal bool               `json:"link_external,omitempty"`
}

func Card(n models.ScheduleNotice) NoticeCard {
	style := n.Style
	if _, ok := defaultEmoji[style]; !ok {
		style = models.StyleInfo
	}
	c := NoticeCard{
		Key:   n.Key,
		Style: style,
		Emoji: n.Emoji,
		Title: n.Title,
		Body:  n.Body,
	}
	if c.Emoji == "" {
		c.Emoji = defaultEmoji[style]
	}
	if n.LinkURL != "" {
		c.LinkURL = n.LinkURL
		c.LinkLabel = n.LinkLabel
		if c.LinkLabel == "" {
			c.LinkLabel = defaultLinkLabel
		}
		c.LinkExternal = strings.HasPrefix(n.LinkURL, "http")
	}
	return c
}
