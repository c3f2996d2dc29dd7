package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c4flow/studio-service/internal/models"
)

type ScheduleRepo struct {
	db *sql.DB
}

func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// GetWeeklySchedule loads slots denormalized with their class, plus the
// authored notices. A slot whose class was deleted comes back with an empty
// ClassID.
func (r *ScheduleRepo) GetWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error) {
	var ws models.WeeklySchedule

	slots, err := r.slots(ctx)
	if err != nil {
		return ws, err
	}
	notices, err := r.notices(ctx)
	if err != nil {
		return ws, err
	}
	ws.Slots = slots
	ws.Notices = notices
	return ws, nil
}

func (r *ScheduleRepo) slots(ctx context.Context) ([]models.ScheduleSlot, error) {
	query := `
		SELECT s.key, s.day, s.time,
		       COALESCE(c.id, ''), COALESCE(c.name, ''), COALESCE(c.active, false),
		       COALESCE(c.base_price, 0), c.sale_price, COALESCE(c.booking_url, '')
		FROM schedule_slots s
		LEFT JOIN dance_classes c ON c.id = s.class_id
		ORDER BY s.position;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []models.ScheduleSlot
	for rows.Next() {
		var (
			s    models.ScheduleSlot
			sale nullInt
		)
		if err := rows.Scan(
			&s.Key,
			&s.Day,
			&s.Time,
			&s.ClassID,
			&s.ClassName,
			&s.ClassActive,
			&s.Price,
			&sale,
			&s.BookingURL,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		s.SalePrice = intPtr(sale)
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *ScheduleRepo) notices(ctx context.Context) ([]models.ScheduleNotice, error) {
	query := `
		SELECT key, active, style, emoji, title, body, link_url, link_label,
		       start_date, end_date
		FROM schedule_notices
		ORDER BY position;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	var notices []models.ScheduleNotice
	for rows.Next() {
		var (
			n          models.ScheduleNotice
			start, end sql.NullTime
		)
		if err := rows.Scan(
			&n.Key,
			&n.Active,
			&n.Style,
			&n.Emoji,
			&n.Title,
			&n.Body,
			&n.LinkURL,
			&n.LinkLabel,
			&start,
			&end,
		); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		n.StartDate = timePtr(start)
		n.EndDate = timePtr(end)
		notices = append(notices, n)
	}
	return notices, rows.Err()
}
