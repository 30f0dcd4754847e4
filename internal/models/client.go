package models

import (
	"database/sql"
	"time"
)

type Client struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Address   sql.NullString `db:"address"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
