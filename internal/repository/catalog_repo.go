package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/c4flow/studio-service/internal/models"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const classColumns = `
	id, name, slug, tagline, short_description, duration_minutes,
	booking_url, note, highlighted, position, active, base_price, sale_price`

func scanClass(s scanner) (models.CatalogItem, error) {
	var (
		c    models.CatalogItem
		sale nullInt
	)
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Tagline,
		&c.ShortDescription,
		&c.DurationMinutes,
		&c.BookingURL,
		&c.Note,
		&c.Highlighted,
		&c.Order,
		&c.Active,
		&c.BasePrice,
		&sale,
	)
	if err != nil {
		return c, err
	}
	c.Kind = models.KindClass
	c.ManualSalePrice = intPtr(sale)
	return c, nil
}

// ListClasses returns the active classes in display order.
func (r *CatalogRepo) ListClasses(ctx context.Context) ([]models.CatalogItem, error) {
	query := `SELECT` + classColumns + `
		FROM dance_classes
		WHERE active
		ORDER BY position, name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []models.CatalogItem
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// GetClassBySlug returns ErrNotFound for unknown or inactive classes.
func (r *CatalogRepo) GetClassBySlug(ctx context.Context, slug string) (models.CatalogItem, error) {
	query := `SELECT` + classColumns + `
		FROM dance_classes
		WHERE slug = $1 AND active;
	`
	c, err := scanClass(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, ErrNotFound
		}
		return c, fmt.Errorf("get class %q: %w", slug, err)
	}
	return c, nil
}

// ListBundles returns the active bundles of both categories in display order.
func (r *CatalogRepo) ListBundles(ctx context.Context) ([]models.CatalogItem, error) {
	query := `
		SELECT id, category, name, note, booking_url, highlighted, position,
		       active, base_price, sale_price
		FROM pricing_bundles
		WHERE active
		ORDER BY category, position, name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	defer rows.Close()

	var bundles []models.CatalogItem
	for rows.Next() {
		var (
			b    models.CatalogItem
			sale nullInt
		)
		if err := rows.Scan(
			&b.ID,
			&b.Category,
			&b.Name,
			&b.Note,
			&b.BookingURL,
			&b.Highlighted,
			&b.Order,
			&b.Active,
			&b.BasePrice,
			&sale,
		); err != nil {
			return nil, fmt.Errorf("scan bundle: %w", err)
		}
		b.Kind = models.KindBundle
		b.ManualSalePrice = intPtr(sale)
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}
