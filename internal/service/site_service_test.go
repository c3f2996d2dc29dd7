package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/c4flow/studio-service/internal/errx"
	"github.com/c4flow/studio-service/internal/models"
	"github.com/c4flow/studio-service/internal/pricing"
	"github.com/c4flow/studio-service/internal/schedule"
)

const fallbackBooking = "https://book.example.test/"

func intp(v int) *int { return &v }

var today = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newSite(catalog *fakeCatalog, promos *fakePromos, sched *fakeSchedule) *SiteService {
	s := NewSiteService(catalog, promos, sched, fallbackBooking, time.UTC)
	s.now = func() time.Time { return today }
	return s
}

func salsa() models.CatalogItem {
	return models.CatalogItem{
		ID: "salsa", Kind: models.KindClass, Name: "Salsa", Slug: "salsa",
		Active: true, BasePrice: 200,
	}
}

func TestListClassesPricesWithBanner(t *testing.T) {
	hip := models.CatalogItem{
		ID: "hiphop", Kind: models.KindClass, Name: "Hip Hop", Slug: "hip-hop",
		Active: true, BasePrice: 180, ManualSalePrice: intp(150), BookingURL: "https://hiphop.test/",
	}
	site := newSite(
		&fakeCatalog{classes: []models.CatalogItem{salsa(), hip}},
		&fakePromos{banner: &models.BannerPromotion{
			Enabled: true, DiscountEnabled: true, DiscountPercent: intp(25), Scope: models.ScopeAll,
		}},
		&fakeSchedule{},
	)

	got, err := site.ListClasses(context.Background())
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d classes, want 2", len(got))
	}

	if *got[0].Price.Effective != 150 || got[0].Badge != "25% OFF" {
		t.Errorf("salsa priced %+v badge %q", got[0].Price, got[0].Badge)
	}
	if got[0].BookingURL != fallbackBooking {
		t.Errorf("salsa booking url = %q, want fallback", got[0].BookingURL)
	}
	// manual sale price wins over the banner percent for classes
	if *got[1].Price.Effective != 150 || got[1].Price.Source != pricing.SourceManual || got[1].Badge != "" {
		t.Errorf("hip hop priced %+v badge %q", got[1].Price, got[1].Badge)
	}
	if got[1].BookingURL != "https://hiphop.test/" {
		t.Errorf("hip hop booking url = %q", got[1].BookingURL)
	}
}

func TestGetClassNotFound(t *testing.T) {
	site := newSite(&fakeCatalog{classes: []models.CatalogItem{salsa()}}, &fakePromos{}, &fakeSchedule{})

	if _, err := site.GetClass(context.Background(), "salsa"); err != nil {
		t.Fatalf("GetClass(salsa): %v", err)
	}

	_, err := site.GetClass(context.Background(), "tango")
	var appErr *errx.AppError
	if !errors.As(err, &appErr) || appErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func TestListBundlesGroupsByCategory(t *testing.T) {
	bundles := []models.CatalogItem{
		{ID: "p1", Kind: models.KindBundle, Category: models.CategoryPrivate, Name: "1 private", BasePrice: 600},
		{ID: "g1", Kind: models.KindBundle, Category: models.CategoryGroup, Name: "4 classes", BasePrice: 720},
		{ID: "g2", Kind: models.KindBundle, Category: models.CategoryGroup, Name: "8 classes", BasePrice: 1360, ManualSalePrice: intp(1300)},
	}
	site := newSite(
		&fakeCatalog{bundles: bundles},
		&fakePromos{
			banner: &models.BannerPromotion{Enabled: true, DiscountEnabled: true, DiscountPercent: intp(50), Scope: models.ScopeAll},
			global: &models.GlobalDiscount{Enabled: true, DiscountPercent: intp(10), Scope: models.ScopeAll, ApplyToGroupBundles: true},
		},
		&fakeSchedule{},
	)

	groups, err := site.ListBundles(context.Background())
	if err != nil {
		t.Fatalf("ListBundles: %v", err)
	}

	type row struct {
		Category models.Category
		ID       string
		Pay      int
	}
	var got []row
	for _, g := range groups {
		for _, b := range g.Bundles {
			got = append(got, row{g.Category, b.ID, b.Price.Display()})
		}
	}
	want := []row{
		{models.CategoryGroup, "g1", 648},
		{models.CategoryGroup, "g2", 1224},
		{models.CategoryPrivate, "p1", 600},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bundles mismatch (-want +got):\n%s", diff)
	}
}

func TestListBundlesOmitsEmptyCategories(t *testing.T) {
	site := newSite(&fakeCatalog{bundles: []models.CatalogItem{
		{ID: "g1", Kind: models.KindBundle, Category: models.CategoryGroup, BasePrice: 720},
	}}, &fakePromos{}, &fakeSchedule{})

	groups, err := site.ListBundles(context.Background())
	if err != nil {
		t.Fatalf("ListBundles: %v", err)
	}
	if len(groups) != 1 || groups[0].Category != models.CategoryGroup {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestGetScheduleHiddenWithoutSlots(t *testing.T) {
	site := newSite(&fakeCatalog{}, &fakePromos{
		banner: &models.BannerPromotion{Enabled: true, ShowInSchedule: true, BannerText: "Sale"},
	}, &fakeSchedule{ws: models.WeeklySchedule{
		Slots:   []models.ScheduleSlot{{Key: "s1", Day: models.Monday, Time: "18:00"}},
		Notices: []models.ScheduleNotice{{Key: "n1", Active: true, Title: "Hello"}},
	}})

	view, err := site.GetSchedule(context.Background(), today)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if view != nil {
		t.Fatalf("expected a hidden schedule, got %+v", view)
	}
}

func TestGetSchedule(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	ws := models.WeeklySchedule{
		Slots: []models.ScheduleSlot{
			{Key: "s1", Day: models.Wednesday, Time: "18:00", ClassID: "salsa", ClassName: "Salsa", ClassActive: true, Price: 200},
			{Key: "s2", Day: models.Monday, Time: "19:00", ClassID: "open", ClassName: "Open Practice", ClassActive: true, BookingURL: "https://open.test/"},
			{Key: "s3", Day: models.Monday, Time: "20:00", ClassID: "gone", ClassName: "Gone", ClassActive: false, Price: 100},
		},
		Notices: []models.ScheduleNotice{
			{Key: "old", Active: true, Title: "Expired", EndDate: &yesterday},
			{Key: "n1", Active: true, Style: models.StyleWarning, Title: "No class on Friday"},
		},
	}
	site := newSite(&fakeCatalog{}, &fakePromos{
		banner: &models.BannerPromotion{
			Enabled: true, BannerText: "20% off March", ShowInSchedule: true, Link: "/classes",
			DiscountEnabled: true, DiscountPercent: intp(20), Scope: models.ScopeSpecific, SpecificItemIDs: []string{"salsa"},
		},
	}, &fakeSchedule{ws: ws})

	view, err := site.GetSchedule(context.Background(), today)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if view == nil {
		t.Fatal("expected a schedule")
	}
	if view.Date != "2026-03-14" {
		t.Errorf("Date = %q", view.Date)
	}

	want := []DayView{
		{Day: models.Monday, Slots: []SlotView{
			{Key: "s2", Time: "19:00", ClassID: "open", ClassName: "Open Practice", BookingURL: "https://open.test/"},
		}},
		{Day: models.Wednesday, Slots: []SlotView{
			{Key: "s1", Time: "18:00", ClassID: "salsa", ClassName: "Salsa", BookingURL: fallbackBooking, Price: &PriceView{
				PriceResult:    pricing.PriceResult{Original: 200, Effective: intp(160), Discounted: true, Source: pricing.SourceComputed},
				OriginalLabel:  "R 200",
				EffectiveLabel: "R 160",
				Badge:          "20% OFF",
			}},
		}},
	}
	if diff := cmp.Diff(want, view.Days); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}

	var keys []string
	for _, n := range view.Notices {
		keys = append(keys, n.Key)
	}
	if diff := cmp.Diff([]string{schedule.BannerNoticeKey, "n1"}, keys); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
	if view.Notices[0].LinkLabel != "Book Now" || view.Notices[1].Emoji != "⚠️" {
		t.Errorf("unexpected notice cards: %+v", view.Notices)
	}
}

func TestGetScheduleFetchError(t *testing.T) {
	boom := errors.New("db down")
	site := newSite(&fakeCatalog{}, &fakePromos{}, &fakeSchedule{err: boom})

	if _, err := site.GetSchedule(context.Background(), today); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestGetBanner(t *testing.T) {
	updated := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		banner *models.BannerPromotion
		want   *BannerView
	}{
		{name: "missing document", banner: nil, want: nil},
		{name: "disabled", banner: &models.BannerPromotion{BannerText: "Sale"}, want: nil},
		{name: "enabled without text", banner: &models.BannerPromotion{Enabled: true}, want: nil},
		{
			name:   "live",
			banner: &models.BannerPromotion{Enabled: true, BannerText: "Sale", Link: "/bundles", UpdatedAt: updated},
			want:   &BannerView{Text: "Sale", Link: "/bundles", Version: "1772352000"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			site := newSite(&fakeCatalog{}, &fakePromos{banner: tc.banner}, &fakeSchedule{})
			got, err := site.GetBanner(context.Background())
			if err != nil {
				t.Fatalf("GetBanner: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("banner mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	site := NewSiteService(&fakeCatalog{}, &fakePromos{}, &fakeSchedule{}, fallbackBooking, loc)

	got, err := site.ParseDate("2026-03-14")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Location() != loc || got.Day() != 14 {
		t.Errorf("ParseDate = %v", got)
	}

	_, err = site.ParseDate("14/03/2026")
	var appErr *errx.AppError
	if !errors.As(err, &appErr) || appErr.Status != http.StatusBadRequest {
		t.Errorf("expected a 400 AppError, got %v", err)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	site := NewSiteService(&fakeCatalog{}, &fakePromos{}, &fakeSchedule{}, fallbackBooking, loc)
	site.now = func() time.Time { return time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC) }

	if got := site.Today(); got.Day() != 15 {
		t.Errorf("Today = %v, want the 15th in SAST", got)
	}
}
