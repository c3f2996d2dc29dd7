package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/c4flow/studio-service/internal/concurrency"
	"github.com/c4flow/studio-service/internal/errx"
	"github.com/c4flow/studio-service/internal/models"
	"github.com/c4flow/studio-service/internal/pricing"
	"github.com/c4flow/studio-service/internal/repository"
	"github.com/c4flow/studio-service/internal/schedule"
)

// Repos required by the service (interfaces so tests can fake them)
type CatalogRepo interface {
	ListClasses(ctx context.Context) ([]models.CatalogItem, error)
	GetClassBySlug(ctx context.Context, slug string) (models.CatalogItem, error)
	ListBundles(ctx context.Context) ([]models.CatalogItem, error)
}

type PromotionRepo interface {
	GetBanner(ctx context.Context) (*models.BannerPromotion, error)
	GetGlobalDiscount(ctx context.Context) (*models.GlobalDiscount, error)
}

type ScheduleRepo interface {
	GetWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error)
}

const dateLayout = "2006-01-02"

// SiteService reads fresh content snapshots on every call and runs them
// through the pricing and schedule engines. Nothing is cached.
type SiteService struct {
	catalog    CatalogRepo
	promos     PromotionRepo
	schedule   ScheduleRepo
	bookingURL string
	loc        *time.Location
	now        func() time.Time
}

func NewSiteService(catalog CatalogRepo, promos PromotionRepo, sched ScheduleRepo, bookingURL string, loc *time.Location) *SiteService {
	if loc == nil {
		loc = time.UTC
	}
	return &SiteService{
		catalog:    catalog,
		promos:     promos,
		schedule:   sched,
		bookingURL: bookingURL,
		loc:        loc,
		now:        time.Now,
	}
}

// Today is the current time in the studio's timezone.
func (s *SiteService) Today() time.Time {
	return s.now().In(s.loc)
}

// ParseDate reads a YYYY-MM-DD date in the studio's timezone.
func (s *SiteService) ParseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, v, s.loc)
	if err != nil {
		return time.Time{}, errx.Validation("date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

type promotions struct {
	banner *models.BannerPromotion
	global *models.GlobalDiscount
}

func (s *SiteService) promotionTasks(p *promotions) []concurrency.Task {
	return []concurrency.Task{
		func(ctx context.Context) (err error) {
			p.banner, err = s.promos.GetBanner(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			p.global, err = s.promos.GetGlobalDiscount(ctx)
			return err
		},
	}
}

func (s *SiteService) price(item models.CatalogItem, p promotions) pricing.PricedItem {
	if item.BookingURL == "" {
		item.BookingURL = s.bookingURL
	}
	return pricing.PriceItem(item, p.banner, p.global)
}

// ListClasses returns every active class priced against the live promotions.
func (s *SiteService) ListClasses(ctx context.Context) ([]pricing.PricedItem, error) {
	var (
		classes []models.CatalogItem
		p       promotions
	)
	tasks := append(s.promotionTasks(&p), func(ctx context.Context) (err error) {
		classes, err = s.catalog.ListClasses(ctx)
		return err
	})
	if err := concurrency.Parallel(ctx, 0, tasks...); err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}

	out := make([]pricing.PricedItem, 0, len(classes))
	for _, c := range classes {
		out = append(out, s.price(c, p))
	}
	return out, nil
}

func (s *SiteService) GetClass(ctx context.Context, slug string) (pricing.PricedItem, error) {
	var (
		class models.CatalogItem
		p     promotions
	)
	tasks := append(s.promotionTasks(&p), func(ctx context.Context) (err error) {
		class, err = s.catalog.GetClassBySlug(ctx, slug)
		return err
	})
	if err := concurrency.Parallel(ctx, 0, tasks...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pricing.PricedItem{}, errx.NotFound(err)
		}
		return pricing.PricedItem{}, fmt.Errorf("load class %q: %w", slug, err)
	}
	return s.price(class, p), nil
}

type BundleGroup struct {
	Category models.Category      `json:"category"`
	Bundles  []pricing.PricedItem `json:"bundles"`
}

var bundleCategories = []models.Category{models.CategoryGroup, models.CategoryPrivate}

// ListBundles returns priced bundles grouped by category, group first.
// Categories without bundles are left out.
func (s *SiteService) ListBundles(ctx context.Context) ([]BundleGroup, error) {
	var (
		bundles []models.CatalogItem
		p       promotions
	)
	tasks := append(s.promotionTasks(&p), func(ctx context.Context) (err error) {
		bundles, err = s.catalog.ListBundles(ctx)
		return err
	})
	if err := concurrency.Parallel(ctx, 0, tasks...); err != nil {
		return nil, fmt.Errorf("load bundles: %w", err)
	}

	byCategory := make(map[models.Category][]pricing.PricedItem)
	for _, b := range bundles {
		byCategory[b.Category] = append(byCategory[b.Category], s.price(b, p))
	}

	groups := make([]BundleGroup, 0, len(bundleCategories))
	for _, c := range bundleCategories {
		if items := byCategory[c]; len(items) > 0 {
			groups = append(groups, BundleGroup{Category: c, Bundles: items})
		}
	}
	return groups, nil
}

type PriceView struct {
	pricing.PriceResult
	OriginalLabel  string `json:"original_label"`
	EffectiveLabel string `json:"effective_label,omitempty"`
	Badge          string `json:"badge,omitempty"`
}

type SlotView struct {
	Key        string     `json:"key"`
	Time       string     `json:"time"`
	ClassID    string     `json:"class_id"`
	ClassName  string     `json:"class_name"`
	BookingURL string     `json:"booking_url"`
	Price      *PriceView `json:"price,omitempty"`
}

type DayView struct {
	Day   models.Day `json:"day"`
	Slots []SlotView `json:"slots"`
}

type ScheduleView struct {
	Date    string                `json:"date"`
	Days    []DayView             `json:"days"`
	Notices []schedule.NoticeCard `json:"notices"`
}

// GetSchedule builds the weekly timetable with its notices as seen on today.
// It returns nil when no day has a slot: the schedule section is hidden and
// so are its notices.
func (s *SiteService) GetSchedule(ctx context.Context, today time.Time) (*ScheduleView, error) {
	var (
		ws models.WeeklySchedule
		p  promotions
	)
	tasks := append(s.promotionTasks(&p), func(ctx context.Context) (err error) {
		ws, err = s.schedule.GetWeeklySchedule(ctx)
		return err
	})
	if err := concurrency.Parallel(ctx, 0, tasks...); err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	days := schedule.AssembleSchedule(ws.Slots)
	if len(days) == 0 {
		return nil, nil
	}

	view := &ScheduleView{
		Date: today.Format(dateLayout),
		Days: make([]DayView, 0, len(days)),
	}
	for _, d := range days {
		dv := DayView{Day: d.Day, Slots: make([]SlotView, 0, len(d.Slots))}
		for _, slot := range d.Slots {
			dv.Slots = append(dv.Slots, s.slotView(slot, p))
		}
		view.Days = append(view.Days, dv)
	}
	for _, n := range schedule.VisibleNotices(p.banner, ws.Notices, today) {
		view.Notices = append(view.Notices, schedule.Card(n))
	}
	return view, nil
}

func (s *SiteService) slotView(slot models.ScheduleSlot, p promotions) SlotView {
	sv := SlotView{
		Key:        slot.Key,
		Time:       slot.Time,
		ClassID:    slot.ClassID,
		ClassName:  slot.ClassName,
		BookingURL: slot.BookingURL,
	}
	if sv.BookingURL == "" {
		sv.BookingURL = s.bookingURL
	}
	// unpriced classes show no price at all
	if slot.Price <= 0 {
		return sv
	}
	priced := s.price(models.CatalogItem{
		ID:              slot.ClassID,
		Kind:            models.KindClass,
		Name:            slot.ClassName,
		BasePrice:       slot.Price,
		ManualSalePrice: slot.SalePrice,
	}, p)
	sv.Price = &PriceView{
		PriceResult:    priced.Price,
		OriginalLabel:  priced.OriginalLabel,
		EffectiveLabel: priced.EffectiveLabel,
		Badge:          priced.Badge,
	}
	return sv
}

type BannerView struct {
	Text    string `json:"text"`
	Link    string `json:"link,omitempty"`
	Version string `json:"version"`
}

// GetBanner returns the announcement strip, or nil when it is switched off.
// Version changes whenever the banner is edited so a dismissed strip
// reappears after an update.
func (s *SiteService) GetBanner(ctx context.Context) (*BannerView, error) {
	banner, err := s.promos.GetBanner(ctx)
	if err != nil {
		return nil, fmt.Errorf("load banner: %w", err)
	}
	if banner == nil || !banner.Enabled || banner.BannerText == "" {
		return nil, nil
	}
	return &BannerView{
		Text:    banner.BannerText,
		Link:    banner.Link,
		Version: strconv.FormatInt(banner.UpdatedAt.Unix(), 10),
	}, nil
}
