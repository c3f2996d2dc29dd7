package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/c4flow/studio-service/internal/models"
)

func intp(v int) *int { return &v }

func class(id string, base int, sale *int) models.CatalogItem {
	return models.CatalogItem{ID: id, Kind: models.KindClass, BasePrice: base, ManualSalePrice: sale, Active: true}
}

func bundle(id string, cat models.Category, base int, sale *int) models.CatalogItem {
	return models.CatalogItem{ID: id, Kind: models.KindBundle, Category: cat, BasePrice: base, ManualSalePrice: sale}
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name   string
		item   models.CatalogItem
		banner *int
		global *int
		want   PriceResult
	}{
		{
			name: "no candidates",
			item: class("a", 200, nil),
			want: PriceResult{Original: 200},
		},
		{
			name:   "class manual wins over cheaper banner price",
			item:   class("a", 200, intp(180)),
			banner: intp(25),
			want:   PriceResult{Original: 200, Effective: intp(180), Discounted: true, Source: SourceManual},
		},
		{
			name:   "class banner percent without manual price",
			item:   class("a", 200, nil),
			banner: intp(25),
			want:   PriceResult{Original: 200, Effective: intp(150), Discounted: true, Source: SourceComputed},
		},
		{
			name:   "class prefers banner percent over global percent",
			item:   class("a", 200, nil),
			banner: intp(10),
			global: intp(50),
			want:   PriceResult{Original: 200, Effective: intp(180), Discounted: true, Source: SourceComputed},
		},
		{
			name:   "class falls back to global percent",
			item:   class("a", 200, nil),
			global: intp(50),
			want:   PriceResult{Original: 200, Effective: intp(100), Discounted: true, Source: SourceComputed},
		},
		{
			name:   "bundle cheapest wins",
			item:   bundle("b", models.CategoryGroup, 1000, intp(900)),
			global: intp(25),
			want:   PriceResult{Original: 1000, Effective: intp(750), Discounted: true, Source: SourceComputed},
		},
		{
			name:   "bundle manual cheaper than percent",
			item:   bundle("b", models.CategoryGroup, 1000, intp(600)),
			global: intp(25),
			want:   PriceResult{Original: 1000, Effective: intp(600), Discounted: true, Source: SourceManual},
		},
		{
			name:   "bundle ignores banner percent",
			item:   bundle("b", models.CategoryGroup, 1000, nil),
			banner: intp(25),
			want:   PriceResult{Original: 1000},
		},
		{
			name:   "percent zero is ignored",
			item:   class("a", 200, nil),
			banner: intp(0),
			want:   PriceResult{Original: 200},
		},
		{
			name:   "percent above range is ignored",
			item:   class("a", 200, nil),
			global: intp(150),
			want:   PriceResult{Original: 200},
		},
		{
			name:   "invalid banner percent falls through to valid global",
			item:   class("a", 200, nil),
			banner: intp(100),
			global: intp(20),
			want:   PriceResult{Original: 200, Effective: intp(160), Discounted: true, Source: SourceComputed},
		},
		{
			name: "sale price equal to base is ignored",
			item: class("a", 200, intp(200)),
			want: PriceResult{Original: 200},
		},
		{
			name:   "sale price above base is ignored and percent used",
			item:   class("a", 200, intp(250)),
			banner: intp(25),
			want:   PriceResult{Original: 200, Effective: intp(150), Discounted: true, Source: SourceComputed},
		},
		{
			name: "zero sale price is treated as unset",
			item: class("a", 200, intp(0)),
			want: PriceResult{Original: 200},
		},
		{
			name:   "free item never shows a discount",
			item:   class("a", 0, nil),
			banner: intp(25),
			want:   PriceResult{Original: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(tt.item, tt.banner, tt.global)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolvePrice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPriceResultDisplay(t *testing.T) {
	if got := (PriceResult{Original: 300}).Display(); got != 300 {
		t.Errorf("Display() = %d, want 300", got)
	}
	r := PriceResult{Original: 300, Effective: intp(250), Discounted: true}
	if got := r.Display(); got != 250 {
		t.Errorf("Display() = %d, want 250", got)
	}
}
