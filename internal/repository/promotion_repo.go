package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/c4flow/studio-service/internal/models"
)

// PromotionRepo reads the two singleton promotion documents. A missing
// document is not an error: both getters return nil, nil.
type PromotionRepo struct {
	db *sql.DB
}

func NewPromotionRepo(db *sql.DB) *PromotionRepo {
	return &PromotionRepo{db: db}
}

func (r *PromotionRepo) GetBanner(ctx context.Context) (*models.BannerPromotion, error) {
	query := `
		SELECT enabled, banner_text, link, discount_enabled, discount_percent,
		       scope, specific_item_ids, show_in_schedule, schedule_notice_text,
		       updated_at
		FROM announcement_bar
		WHERE id = 1;
	`
	var (
		b       models.BannerPromotion
		percent nullInt
		ids     pq.StringArray
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&b.Enabled,
		&b.BannerText,
		&b.Link,
		&b.DiscountEnabled,
		&percent,
		&b.Scope,
		&ids,
		&b.ShowInSchedule,
		&b.ScheduleNoticeText,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	b.DiscountPercent = intPtr(percent)
	b.SpecificItemIDs = ids
	return &b, nil
}

func (r *PromotionRepo) GetGlobalDiscount(ctx context.Context) (*models.GlobalDiscount, error) {
	query := `
		SELECT enabled, discount_percent, scope, specific_item_ids,
		       apply_to_group_bundles, apply_to_private_bundles, label
		FROM discounts
		WHERE id = 1;
	`
	var (
		g       models.GlobalDiscount
		percent nullInt
		ids     pq.StringArray
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&g.Enabled,
		&percent,
		&g.Scope,
		&ids,
		&g.ApplyToGroupBundles,
		&g.ApplyToPrivateBundles,
		&g.Label,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount: %w", err)
	}
	g.DiscountPercent = intPtr(percent)
	g.SpecificItemIDs = ids
	return &g, nil
}
