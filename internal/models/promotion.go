package models

import "time"

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSpecific Scope = "specific"
)

// BannerPromotion is the site-wide announcement strip. It can carry a class
// discount and can surface itself as a schedule notice.
type BannerPromotion struct {
	Enabled            bool      `json:"enabled"`
	BannerText         string    `json:"banner_text"`
	Link               string    `json:"link,omitempty"`
	DiscountEnabled    bool      `json:"discount_enabled"`
	DiscountPercent    *int      `json:"discount_percent,omitempty"`
	Scope              Scope     `json:"scope"`
	SpecificItemIDs    []string  `json:"specific_item_ids,omitempty"`
	ShowInSchedule     bool      `json:"show_in_schedule"`
	ScheduleNoticeText string    `json:"schedule_notice_text,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DiscountLive reports whether the banner currently carries a discount.
func (b *BannerPromotion) DiscountLive() bool {
	return b != nil && b.Enabled && b.DiscountEnabled && b.DiscountPercent != nil
}

// GlobalDiscount is the standalone discount document. Bundles are only in
// reach when the flag for their category is set.
type GlobalDiscount struct {
	Enabled               bool     `json:"enabled"`
	DiscountPercent       *int     `json:"discount_percent,omitempty"`
	Scope                 Scope    `json:"scope"`
	SpecificItemIDs       []string `json:"specific_item_ids,omitempty"`
	ApplyToGroupBundles   bool     `json:"apply_to_group_bundles"`
	ApplyToPrivateBundles bool     `json:"apply_to_private_bundles"`
	Label                 string   `json:"label,omitempty"`
}

func (g *GlobalDiscount) Live() bool {
	return g != nil && g.Enabled && g.DiscountPercent != nil
}

// AppliesToCategory reports the per-category bundle opt-in.
func (g *GlobalDiscount) AppliesToCategory(c Category) bool {
	switch c {
	case CategoryGroup:
		return g.ApplyToGroupBundles
	case CategoryPrivate:
		return g.ApplyToPrivateBundles
	default:
		return false
	}
}
