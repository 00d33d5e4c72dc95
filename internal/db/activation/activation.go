package activation

import (
	"context"
	"errors"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxTokenRepository struct {
	db db.Querier
}

func NewPgxTokenRepository(db db.Querier) *PgxTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTokenRepository{db: db}
}

const tokenColumns = "id, user_id, used, expires_at, created_at"

func (r *PgxTokenRepository) Create(
	ctx context.Context,
	input activation.CreateTokenInput,
) (token activation.Token, err error) {
	// Expiry is computed with the database clock so that the validity
	// predicate in GetValidByID compares against the same time source.
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO activate_account_tokens (user_id, expires_at)
         VALUES ($1, now() + interval '15 minutes')
         RETURNING `+tokenColumns+`;`,
		int64(input.UserID),
	)
	return decodeToken(row)
}

func (r *PgxTokenRepository) GetByID(
	ctx context.Context,
	id activation.TokenID,
) (token activation.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+`
         FROM activate_account_tokens
         WHERE id = $1
         LIMIT 1;`,
		string(id),
	)
	token, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return token, activation.NewTokenNotFoundError(id)
	}
	return token, err
}

func (r *PgxTokenRepository) GetValidByID(
	ctx context.Context,
	id activation.TokenID,
) (token activation.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+`
         FROM activate_account_tokens
         WHERE id = $1
         AND used = false
         AND expires_at >= now()
         LIMIT 1;`,
		string(id),
	)
	token, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return token, activation.NewTokenNotFoundError(id)
	}
	return token, err
}

func (r *PgxTokenRepository) GetLatestByUserID(
	ctx context.Context,
	userID user.ID,
) (token activation.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+`
         FROM activate_account_tokens
         WHERE user_id = $1
         ORDER BY created_at DESC
         LIMIT 1;`,
		int64(userID),
	)
	token, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return token, activation.NewUserTokenNotFoundError(userID)
	}
	return token, err
}

func (r *PgxTokenRepository) MarkUsed(
	ctx context.Context,
	id activation.TokenID,
) (token activation.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE activate_account_tokens
         SET used = true
         WHERE id = $1
         RETURNING `+tokenColumns+`;`,
		string(id),
	)
	token, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return token, activation.NewTokenNotFoundError(id)
	}
	return token, err
}

func decodeToken(row pgx.Row) (token activation.Token, err error) {
	var (
		id        string
		userID    int64
		used      bool
		expiresAt time.Time
		createdAt time.Time
	)
	err = row.Scan(&id, &userID, &used, &expiresAt, &createdAt)
	if err != nil {
		return token, err
	}
	return activation.Token{
		ID:        activation.TokenID(id),
		UserID:    user.ID(userID),
		Used:      used,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}
