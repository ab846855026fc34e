package postgres

import (
	"context"
	"fmt"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UserRepo - репозиторий пользователей (таблица users).
type UserRepo struct {
	db DB
}

// NewUserRepository - Создаёт новый репозиторий пользователей на основе пула соединений.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser - Сохраняет пользователя в одной транзакции. Нарушение уникальности
// username/email возвращается как *repository.ConflictError.
func (r *UserRepo) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `
		INSERT INTO users (username, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
			Scan(&user.ID, &user.CreatedAt)
	})
	if err != nil {
		return domain.User{}, translateError(err)
	}
	return user, nil
}

// GetUserByUsername - Найти пользователя по username (вместе с хэшем пароля).
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE username = $1`, username)
}

// GetUserByEmail - Найти пользователя по email.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE email = $1`, email)
}

func (r *UserRepo) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, hashed_password, created_at
		FROM users
		%s`, where)

	var u domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}
