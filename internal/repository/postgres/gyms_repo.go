package postgres

import (
	"context"
	"errors"

	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type gymsRepo struct{ pool *pgxpool.Pool }

func NewGyms(pool *pgxpool.Pool) repository.Gyms {
	return &gymsRepo{pool: pool}
}

const gymCols = `g.id, g.name, g.owner_id, g.description, g.address, g.city, g.area,
	g.phone, g.amenities, g.hours, g.image_url, g.status, g.capacity, g.featured,
	g.created_at, u.username, u.email`

func scanGym(row pgx.Row) (models.Gym, error) {
	var g models.Gym
	err := row.Scan(&g.ID, &g.Name, &g.OwnerID, &g.Description, &g.Address,
		&g.City, &g.Area, &g.Phone, &g.Amenities, &g.Hours, &g.ImageURL,
		&g.Status, &g.Capacity, &g.Featured, &g.CreatedAt,
		&g.OwnerUsername, &g.OwnerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Gym{}, repository.ErrNotFound
	}
	return g, err
}

func (r *gymsRepo) Create(g models.Gym) (models.Gym, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO gyms(id, name, owner_id, description, address, city, area,
		   phone, amenities, hours, image_url, status, capacity, featured)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		g.ID, g.Name, g.OwnerID, g.Description, g.Address, g.City, g.Area,
		g.Phone, g.Amenities, g.Hours, g.ImageURL, g.Status, g.Capacity, g.Featured,
	)
	if err != nil {
		return models.Gym{}, err
	}
	return r.GetByID(g.ID)
}

func (r *gymsRepo) GetByID(id string) (models.Gym, error) {
	return scanGym(r.pool.QueryRow(context.Background(),
		`SELECT `+gymCols+` FROM gyms g JOIN users u ON u.id=g.owner_id WHERE g.id=$1`, id))
}

func (r *gymsRepo) ListByStatus(status models.GymStatus) ([]models.Gym, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+gymCols+` FROM gyms g JOIN users u ON u.id=g.owner_id
		  WHERE g.status=$1 ORDER BY g.created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGyms(rows)
}

func (r *gymsRepo) ListByOwnerUsername(username string) ([]models.Gym, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+gymCols+` FROM gyms g JOIN users u ON u.id=g.owner_id
		  WHERE u.username=$1 ORDER BY g.created_at DESC`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGyms(rows)
}

func collectGyms(rows pgx.Rows) ([]models.Gym, error) {
	var out []models.Gym
	for rows.Next() {
		g, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *gymsRepo) Update(g models.Gym) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE gyms SET name=$2, description=$3, address=$4, city=$5, area=$6,
		   phone=$7, amenities=$8, hours=$9, image_url=$10, status=$11,
		   capacity=$12, featured=$13
		 WHERE id=$1`,
		g.ID, g.Name, g.Description, g.Address, g.City, g.Area, g.Phone,
		g.Amenities, g.Hours, g.ImageURL, g.Status, g.Capacity, g.Featured,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gymsRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM gyms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
