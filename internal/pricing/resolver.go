package pricing

import "github.com/c4flow/studio-service/internal/models"

const (
	minPercent = 1
	maxPercent = 99
)

// Source names which candidate produced the effective price.
type Source string

const (
	SourceNone     Source = ""
	SourceManual   Source = "manual"
	SourceComputed Source = "computed"
)

type PriceResult struct {
	Original   int    `json:"original"`
	Effective  *int   `json:"effective"`
	Discounted bool   `json:"discounted"`
	Source     Source `json:"source,omitempty"`
}

// Display is the price a visitor pays.
func (r PriceResult) Display() int {
	if r.Discounted && r.Effective != nil {
		return *r.Effective
	}
	return r.Original
}

// ResolvePrice picks the single displayed price for an item.
//
// Classes: a valid manual sale price always wins; the percentage is used only
// when there is no manual price. Bundles: the cheaper of the two candidates
// wins. The banner percent never prices bundles.
//
// Out-of-range percentages and sale prices that are not strictly below the
// base price are ignored rather than clamped.
func ResolvePrice(item models.CatalogItem, bannerDiscount, globalDiscount *int) PriceResult {
	res := PriceResult{Original: item.BasePrice}

	manual, hasManual := manualCandidate(item)
	percent, _, hasPercent := selectPercent(item.Kind, bannerDiscount, globalDiscount)

	var effective int
	switch {
	case item.IsBundle() && hasManual && hasPercent:
		effective, res.Source = manual, SourceManual
		if computed := ApplyPercentOff(item.BasePrice, percent); computed < manual {
			effective, res.Source = computed, SourceComputed
		}
	case hasManual:
		effective, res.Source = manual, SourceManual
	case hasPercent:
		effective, res.Source = ApplyPercentOff(item.BasePrice, percent), SourceComputed
	default:
		return res
	}

	if effective >= item.BasePrice {
		res.Source = SourceNone
		return res
	}
	res.Effective = &effective
	res.Discounted = true
	return res
}

func manualCandidate(item models.CatalogItem) (int, bool) {
	if item.ManualSalePrice == nil {
		return 0, false
	}
	sale := *item.ManualSalePrice
	if sale <= 0 || sale >= item.BasePrice {
		return 0, false
	}
	return sale, true
}

type percentOrigin int

const (
	originBanner percentOrigin = iota + 1
	originGlobal
)

func selectPercent(kind models.ItemKind, banner, global *int) (int, percentOrigin, bool) {
	if kind != models.KindBundle {
		if p, ok := validPercent(banner); ok {
			return p, originBanner, true
		}
	}
	if p, ok := validPercent(global); ok {
		return p, originGlobal, true
	}
	return 0, 0, false
}

func validPercent(p *int) (int, bool) {
	if p == nil || *p < minPercent || *p > maxPercent {
		return 0, false
	}
	return *p, true
}
