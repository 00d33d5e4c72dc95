package user

import (
	"context"
	"errors"
	c "tabnews/internal/core/domain/common"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

const userColumns = "id, username, email, features, created_at, updated_at"

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, email, features)
         VALUES ($1, $2, $3::varchar[])
         RETURNING `+userColumns+`;`,
		input.Username,
		string(input.Email),
		encodeFeatures(input.Features),
	)
	return decodeUser(row)
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 LIMIT 1;`,
		int64(id),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.NewUserNotFoundError(id)
	}
	return u, err
}

func (r *PgxUserRepository) AddFeatures(
	ctx context.Context,
	id user.ID,
	features []user.Feature,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE users
         SET features = (
                SELECT coalesce(array_agg(DISTINCT feature), '{}')
                FROM unnest(features || $2::varchar[]) AS feature
             ),
             updated_at = now()
         WHERE id = $1
         RETURNING `+userColumns+`;`,
		int64(id),
		encodeFeatures(features),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.NewUserNotFoundError(id)
	}
	return u, err
}

func (r *PgxUserRepository) RemoveFeatures(
	ctx context.Context,
	id user.ID,
	features []user.Feature,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE users
         SET features = array(
                SELECT unnest(features)
                EXCEPT
                SELECT unnest($2::varchar[])
             ),
             updated_at = now()
         WHERE id = $1
         RETURNING `+userColumns+`;`,
		int64(id),
		encodeFeatures(features),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.NewUserNotFoundError(id)
	}
	return u, err
}

func encodeFeatures(features []user.Feature) []string {
	encoded := make([]string, len(features))
	for ix, f := range features {
		encoded[ix] = string(f)
	}
	return encoded
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id        int64
		username  string
		email     string
		features  []string
		createdAt time.Time
		updatedAt time.Time
	)
	err = row.Scan(&id, &username, &email, &features, &createdAt, &updatedAt)
	if err != nil {
		return u, err
	}
	decodedFeatures := make([]user.Feature, len(features))
	for ix, f := range features {
		decodedFeatures[ix] = user.Feature(f)
	}
	return user.User{
		ID:        user.ID(id),
		Username:  username,
		Email:     c.Email(email),
		Features:  decodedFeatures,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
