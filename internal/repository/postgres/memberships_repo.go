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

type membershipsRepo struct{ pool *pgxpool.Pool }

func NewMemberships(pool *pgxpool.Pool) repository.Memberships {
	return &membershipsRepo{pool: pool}
}

const membershipCols = `m.id, m.user_id, m.plan_type, m.status, m.total_visits,
	m.remaining_visits, m.price::text, m.purchase_date, m.expiry_date,
	m.created_at, u.email`

func scanMembership(row pgx.Row) (models.Membership, error) {
	var m models.Membership
	err := row.Scan(&m.ID, &m.UserID, &m.PlanType, &m.Status, &m.TotalVisits,
		&m.RemainingVisits, &m.Price, &m.PurchaseDate, &m.ExpiryDate,
		&m.CreatedAt, &m.UserEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Membership{}, repository.ErrNotFound
	}
	return m, err
}

func (r *membershipsRepo) Create(m models.Membership) (models.Membership, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO memberships(id, user_id, plan_type, status, total_visits,
		   remaining_visits, price, purchase_date, expiry_date)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		m.ID, m.UserID, m.PlanType, m.Status, m.TotalVisits, m.RemainingVisits,
		m.Price, m.PurchaseDate, m.ExpiryDate,
	)
	if err != nil {
		return models.Membership{}, err
	}
	return r.GetForUser(m.ID, m.UserID)
}

func (r *membershipsRepo) GetForUser(id, userID string) (models.Membership, error) {
	return scanMembership(r.pool.QueryRow(context.Background(),
		`SELECT `+membershipCols+` FROM memberships m JOIN users u ON u.id=m.user_id
		  WHERE m.id=$1 AND m.user_id=$2`, id, userID))
}

func (r *membershipsRepo) ListByUser(userID string) ([]models.Membership, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+membershipCols+` FROM memberships m JOIN users u ON u.id=m.user_id
		  WHERE m.user_id=$1 ORDER BY m.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) UpdateForUser(m models.Membership) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE memberships SET plan_type=$3, status=$4, total_visits=$5,
		   remaining_visits=$6, price=$7, purchase_date=$8, expiry_date=$9
		 WHERE id=$1 AND user_id=$2`,
		m.ID, m.UserID, m.PlanType, m.Status, m.TotalVisits, m.RemainingVisits,
		m.Price, m.PurchaseDate, m.ExpiryDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *membershipsRepo) DeleteForUser(id, userID string) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM memberships WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
