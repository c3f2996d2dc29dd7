package repository

import (
	"database/sql"
	"time"
)

type nullInt = sql.NullInt64

type scanner interface {
	Scan(dest ...any) error
}

func intPtr(n nullInt) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
