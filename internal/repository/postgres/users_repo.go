package postgres

import (
	"context"
	"errors"

	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userCols = `id, username, email, password_hash, first_name, last_name, role,
	phone, address, city, birth_date, emergency_contact, emergency_phone,
	fitness_goals, profile_image, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Role, &u.Phone, &u.Address, &u.City, &u.BirthDate,
		&u.EmergencyContact, &u.EmergencyPhone, &u.FitnessGoals, &u.ProfileImage,
		&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) Create(u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO users(id, username, email, password_hash, first_name, last_name,
		   role, phone, address, city, birth_date, emergency_contact, emergency_phone,
		   fitness_goals, profile_image)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Role, u.Phone, u.Address, u.City, u.BirthDate, u.EmergencyContact,
		u.EmergencyPhone, u.FitnessGoals, u.ProfileImage,
	)
	if err != nil {
		return models.User{}, asRepoErr(err)
	}
	return r.GetByID(u.ID)
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByUsername(username string) (models.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE username=$1`, username))
}

func (r *usersRepo) GetByEmail(email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) List() ([]models.User, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(u models.User) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE users SET username=$2, email=$3, password_hash=$4, first_name=$5,
		   last_name=$6, role=$7, phone=$8, address=$9, city=$10, birth_date=$11,
		   emergency_contact=$12, emergency_phone=$13, fitness_goals=$14,
		   profile_image=$15, updated_at=now()
		 WHERE id=$1`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Role, u.Phone, u.Address, u.City, u.BirthDate, u.EmergencyContact,
		u.EmergencyPhone, u.FitnessGoals, u.ProfileImage,
	)
	if err != nil {
		return asRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// asRepoErr maps unique-constraint violations to ErrConflict.
func asRepoErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrConflict
	}
	return err
}
