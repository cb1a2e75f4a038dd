package db

import (
	"context"
	"database/sql"
)

const menuItemColumns = `position, id, name, price, category, available, created_at, updated_at, extra`

const listMenuItems = `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY position`

func (q *Queries) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := q.db.QueryContext(ctx, listMenuItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []MenuItem{}
	for rows.Next() {
		var i MenuItem
		if err := scanMenuItem(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const maxMenuItemID = `SELECT COALESCE(MAX(id), 0)::BIGINT FROM menu_items`

func (q *Queries) MaxMenuItemID(ctx context.Context) (int64, error) {
	var highest int64
	err := q.db.QueryRowContext(ctx, maxMenuItemID).Scan(&highest)
	return highest, err
}

const insertMenuItem = `INSERT INTO menu_items (id, name, price, category, available, created_at, extra)
VALUES ($1, $2::jsonb, $3::jsonb, $4::jsonb, $5::jsonb, $6, $7::jsonb)
RETURNING ` + menuItemColumns

// InsertMenuItemParams carries JSONB values as text; a nil value inserts NULL.
type InsertMenuItemParams struct {
	ID        int64
	Name      sql.NullString
	Price     sql.NullString
	Category  sql.NullString
	Available sql.NullString
	CreatedAt sql.NullTime
	Extra     sql.NullString
}

func (q *Queries) InsertMenuItem(ctx context.Context, arg InsertMenuItemParams) (MenuItem, error) {
	row := q.db.QueryRowContext(ctx, insertMenuItem,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Category,
		arg.Available,
		arg.CreatedAt,
		arg.Extra,
	)
	var i MenuItem
	err := scanMenuItem(row, &i)
	return i, err
}

const getMenuItemForUpdate = `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1 FOR UPDATE`

func (q *Queries) GetMenuItemForUpdate(ctx context.Context, id int64) (MenuItem, error) {
	row := q.db.QueryRowContext(ctx, getMenuItemForUpdate, id)
	var i MenuItem
	err := scanMenuItem(row, &i)
	return i, err
}

const updateMenuItem = `UPDATE menu_items
SET name = $2::jsonb, price = $3::jsonb, available = $4::jsonb, updated_at = $5, extra = $6::jsonb
WHERE id = $1`

type UpdateMenuItemParams struct {
	ID        int64
	Name      sql.NullString
	Price     sql.NullString
	Available sql.NullString
	UpdatedAt sql.NullTime
	Extra     sql.NullString
}

func (q *Queries) UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) error {
	_, err := q.db.ExecContext(ctx, updateMenuItem,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Available,
		arg.UpdatedAt,
		arg.Extra,
	)
	return err
}

const deleteMenuItem = `DELETE FROM menu_items WHERE id = $1`

func (q *Queries) DeleteMenuItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteMenuItem, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(s scanner, i *MenuItem) error {
	return s.Scan(
		&i.Position,
		&i.ID,
		&i.Name,
		&i.Price,
		&i.Category,
		&i.Available,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Extra,
	)
}
