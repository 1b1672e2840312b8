package repository

import (
	"context"
	"database/sql"

	"woofer/internal/domain/model"
)

type WoofRepository interface {
	Insert(ctx context.Context, woof *model.Woof) error
	FindAll(ctx context.Context) ([]model.Woof, error)
}

type pgWoofRepository struct {
	db *sql.DB
}

func NewPgWoofRepository(db *sql.DB) WoofRepository {
	return &pgWoofRepository{db: db}
}

func (r *pgWoofRepository) Insert(ctx context.Context, woof *model.Woof) error {
	query := `INSERT INTO woofs (id, name, content, created) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, woof.ID, woof.Name, woof.Content, woof.Created)
	if err != nil {
		return storageErr("pgWoofRepository.Insert", err)
	}
	return nil
}

func (r *pgWoofRepository) FindAll(ctx context.Context) ([]model.Woof, error) {
	query := `SELECT id, name, content, created FROM woofs ORDER BY created`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("pgWoofRepository.FindAll", err)
	}
	defer rows.Close()

	woofs := []model.Woof{}
	for rows.Next() {
		var woof model.Woof
		if err := rows.Scan(&woof.ID, &woof.Name, &woof.Content, &woof.Created); err != nil {
			return nil, storageErr("pgWoofRepository.FindAll", err)
		}
		woofs = append(woofs, woof)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("pgWoofRepository.FindAll", err)
	}
	return woofs, nil
}
