package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"plantGame/internal/domain"
)

const plantColumns = `id, usuari_id, nom, tipus, nivell, atac, defensa, velocitat,
	habilitat_especial, energia, estat, raritat, imatge`

func scanPlant(row rowScanner) (domain.Plant, error) {
	var p domain.Plant
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.Level, &p.Attack, &p.Defense,
		&p.Speed, &p.SpecialAbility, &p.Energy, &p.Status, &p.Rarity, &p.Image)
	return p, err
}

func plantArgs(p domain.Plant) []interface{} {
	return []interface{}{p.UserID, p.Name, p.Type, p.Level, p.Attack, p.Defense,
		p.Speed, p.SpecialAbility, p.Energy, p.Status, p.Rarity, p.Image}
}

func (r *Repo) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+plantColumns+` FROM plantas ORDER BY id;`)
	if err != nil {
		return nil, errors.Wrap(err, "repo: ListPlants")
	}
	defer rows.Close()

	res := []domain.Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, errors.Wrap(err, "repo: ListPlants")
		}
		res = append(res, p)
	}
	return res, errors.Wrap(rows.Err(), "repo: ListPlants")
}

func (r *Repo) GetPlantByID(ctx context.Context, id int) (*domain.Plant, error) {
	query := r.dialect.rebind(`SELECT ` + plantColumns + ` FROM plantas WHERE id = ?;`)
	p, err := scanPlant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "repo: GetPlantByID")
	}
	return &p, nil
}

func (r *Repo) CreatePlant(ctx context.Context, p domain.Plant) (int, error) {
	query := `INSERT INTO plantas (usuari_id, nom, tipus, nivell, atac, defensa, velocitat,
	              habilitat_especial, energia, estat, raritat, imatge)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := r.insert(ctx, query, plantArgs(p)...)
	if err != nil {
		return 0, errors.Wrap(err, "repo: CreatePlant")
	}
	return id, nil
}

func (r *Repo) UpdatePlant(ctx context.Context, id int, p domain.Plant) error {
	query := r.dialect.rebind(`UPDATE plantas
	          SET usuari_id = ?, nom = ?, tipus = ?, nivell = ?, atac = ?, defensa = ?, velocitat = ?,
	              habilitat_especial = ?, energia = ?, estat = ?, raritat = ?, imatge = ?
	          WHERE id = ?;`)
	if _, err := r.db.ExecContext(ctx, query, append(plantArgs(p), id)...); err != nil {
		return errors.Wrap(err, "repo: UpdatePlant")
	}
	return nil
}

func (r *Repo) DeletePlant(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(`DELETE FROM plantas WHERE id = ?;`), id)
	if err != nil {
		return errors.Wrap(err, "repo: DeletePlant")
	}
	return nil
}
