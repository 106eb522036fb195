package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"plantGame/internal/domain"
)

const userColumns = `id, nom, correu, contrasenya, edat, nacionalitat, codiPostal, imatgePerfil, btc`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Age,
		&u.Nationality, &u.PostalCode, &u.ProfileImage, &u.Balance)
	return u, err
}

func (r *Repo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM usuaris ORDER BY id;`)
	if err != nil {
		return nil, errors.Wrap(err, "repo: ListUsers")
	}
	defer rows.Close()

	res := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "repo: ListUsers")
		}
		res = append(res, u)
	}
	return res, errors.Wrap(rows.Err(), "repo: ListUsers")
}

// GetUserByID returns nil, nil when no row matches.
func (r *Repo) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	query := r.dialect.rebind(`SELECT ` + userColumns + ` FROM usuaris WHERE id = ?;`)
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "repo: GetUserByID")
	}
	return &u, nil
}

func (r *Repo) CreateUser(ctx context.Context, u domain.User) (int, error) {
	query := `INSERT INTO usuaris (nom, correu, contrasenya, edat, nacionalitat, codiPostal, imatgePerfil, btc)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := r.insert(ctx, query, u.Name, u.Email, u.Password, u.Age,
		u.Nationality, u.PostalCode, u.ProfileImage, u.Balance)
	if err != nil {
		return 0, errors.Wrap(err, "repo: CreateUser")
	}
	return id, nil
}

// updateUserSQL leaves btc out; the balance only moves through BuyItemsTx.
const updateUserSQL = `UPDATE usuaris
	          SET nom = ?, correu = ?, contrasenya = ?, edat = ?, nacionalitat = ?,
	              codiPostal = ?, imatgePerfil = ?
	          WHERE id = ?;`

// UpdateUser overwrites every profile column. A missing id is not an error.
func (r *Repo) UpdateUser(ctx context.Context, id int, u domain.User) error {
	query := r.dialect.rebind(updateUserSQL)
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Password, u.Age,
		u.Nationality, u.PostalCode, u.ProfileImage, id)
	if err != nil {
		return errors.Wrap(err, "repo: UpdateUser")
	}
	return nil
}

func (r *Repo) DeleteUser(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(`DELETE FROM usuaris WHERE id = ?;`), id)
	if err != nil {
		return errors.Wrap(err, "repo: DeleteUser")
	}
	return nil
}

// BuyItemsTx debits cost from the user and credits the purchased lines in
// one transaction. The debit only applies while the balance still covers
// the cost; otherwise domain.ErrInsufficientBalance is returned and nothing
// is written.
func (r *Repo) BuyItemsTx(ctx context.Context, userID int, lines []domain.PurchaseLine, cost decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "repo: BuyItemsTx")
	}
	res, err := tx.ExecContext(ctx,
		r.dialect.rebind(`UPDATE usuaris SET btc = btc - ? WHERE id = ? AND btc >= ?;`),
		cost, userID, cost)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "repo: BuyItemsTx debit")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "repo: BuyItemsTx debit")
	}
	if rows == 0 {
		_ = tx.Rollback()
		return domain.ErrInsufficientBalance
	}

	args := make([]interface{}, 0, len(lines)*3)
	for _, l := range lines {
		args = append(args, userID, l.ItemID, l.Quantity)
	}
	if _, err = tx.ExecContext(ctx, r.dialect.upsertOwnedItems(len(lines)), args...); err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "repo: BuyItemsTx upsert")
	}
	return errors.Wrap(tx.Commit(), "repo: BuyItemsTx commit")
}
