package repository

import (
	"context"

	"github.com/pkg/errors"

	"plantGame/internal/domain"
)

func (r *Repo) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nom, tipus, descripcio FROM items ORDER BY id;`)
	if err != nil {
		return nil, errors.Wrap(err, "repo: ListItems")
	}
	defer rows.Close()

	res := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.Description); err != nil {
			return nil, errors.Wrap(err, "repo: ListItems")
		}
		res = append(res, it)
	}
	return res, errors.Wrap(rows.Err(), "repo: ListItems")
}

func (r *Repo) ListOwnedItems(ctx context.Context, userID int) ([]domain.OwnedItem, error) {
	query := r.dialect.rebind(`SELECT usuari_id, item_id, quantitat
	          FROM items_usuaris
	          WHERE usuari_id = ?
	          ORDER BY item_id;`)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.Wrap(err, "repo: ListOwnedItems")
	}
	defer rows.Close()

	res := []domain.OwnedItem{}
	for rows.Next() {
		var oi domain.OwnedItem
		if err := rows.Scan(&oi.UserID, &oi.ItemID, &oi.Quantity); err != nil {
			return nil, errors.Wrap(err, "repo: ListOwnedItems")
		}
		res = append(res, oi)
	}
	return res, errors.Wrap(rows.Err(), "repo: ListOwnedItems")
}
