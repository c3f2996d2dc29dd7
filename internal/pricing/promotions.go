package pricing

import (
	"fmt"
	"slices"

	"github.com/c4flow/studio-service/internal/models"
)

// ActiveBannerDiscountPercent returns the banner percent that applies to item,
// or nil. Only classes are in the banner's reach.
func ActiveBannerDiscountPercent(banner *models.BannerPromotion, item models.CatalogItem) *int {
	if !banner.DiscountLive() || item.IsBundle() {
		return nil
	}
	if !inScope(banner.Scope, banner.SpecificItemIDs, item.ID) {
		return nil
	}
	p := *banner.DiscountPercent
	return &p
}

// ActiveGlobalDiscountPercent returns the discount-document percent that
// applies to item, or nil. Bundles also need their category opt-in.
func ActiveGlobalDiscountPercent(global *models.GlobalDiscount, item models.CatalogItem) *int {
	if !global.Live() {
		return nil
	}
	if item.IsBundle() && !global.AppliesToCategory(item.Category) {
		return nil
	}
	if !inScope(global.Scope, global.SpecificItemIDs, item.ID) {
		return nil
	}
	p := *global.DiscountPercent
	return &p
}

func inScope(scope models.Scope, ids []string, id string) bool {
	switch scope {
	case models.ScopeAll:
		return true
	case models.ScopeSpecific:
		return id != "" && slices.Contains(ids, id)
	default:
		return false
	}
}

// PricedItem is what every item-rendering surface consumes.
type PricedItem struct {
	models.CatalogItem
	Price          PriceResult `json:"price"`
	OriginalLabel  string      `json:"original_label"`
	EffectiveLabel string      `json:"effective_label,omitempty"`
	Badge          string      `json:"badge,omitempty"`
}

// PriceItem evaluates both promotion sources for item and resolves its price.
func PriceItem(item models.CatalogItem, banner *models.BannerPromotion, global *models.GlobalDiscount) PricedItem {
	bannerPct := ActiveBannerDiscountPercent(banner, item)
	globalPct := ActiveGlobalDiscountPercent(global, item)

	out := PricedItem{
		CatalogItem:   item,
		Price:         ResolvePrice(item, bannerPct, globalPct),
		OriginalLabel: FormatCurrency(item.BasePrice),
	}
	if !out.Price.Discounted {
		return out
	}
	out.EffectiveLabel = FormatCurrency(*out.Price.Effective)

	if out.Price.Source == SourceComputed {
		percent, origin, _ := selectPercent(item.Kind, bannerPct, globalPct)
		out.Badge = badge(percent, origin, global)
	}
	return out
}

func badge(percent int, origin percentOrigin, global *models.GlobalDiscount) string {
	if origin == originGlobal && global != nil && global.Label != "" {
		return global.Label
	}
	return fmt.Sprintf("%d%% OFF", percent)
}
