package users

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_users.go -package=mocks . UserStore

// Хранилище учётных данных: регистрация и проверка пароля

type Service interface {
	Register(ctx context.Context, username, email, password string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type service struct {
	repo      UserStore
	hasher    Hasher
	dummyHash string
	logger    *slog.Logger
}

// NewService - конструктор сервиса пользователей.
func NewService(repo UserStore, hasher Hasher, logger *slog.Logger) Service {
	s := &service{repo: repo, hasher: hasher, logger: logger}
	// хэш для неизвестных пользователей: время ответа не выдаёт, есть ли такой логин
	if h, err := hasher.Hash("dummy-password"); err == nil {
		s.dummyHash = h
	}
	return s
}

func (s *service) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return domain.User{}, domain.ErrInvalidInput
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return domain.User{}, domain.ErrInvalidInput
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		s.logger.Info("register: username taken", "username", username)
		return domain.User{}, domain.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("register: lookup by username failed", "username", username, "err", err)
		return domain.User{}, err
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		s.logger.Info("register: email taken", "username", username)
		return domain.User{}, domain.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("register: lookup by email failed", "username", username, "err", err)
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("register: hash failed", "username", username, "err", err)
		return domain.User{}, err
	}

	user, err := s.repo.CreateUser(ctx, domain.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		// гонка двух регистраций: второй писатель получает ошибку уникальности
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			if conflict.Field == "email" {
				return domain.User{}, domain.ErrDuplicateEmail
			}
			return domain.User{}, domain.ErrDuplicateUsername
		}
		s.logger.Error("register: create user failed", "username", username, "err", err)
		return domain.User{}, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *service) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.dummyHash != "" {
				_, _ = s.hasher.Verify(password, s.dummyHash)
			}
			return domain.User{}, domain.ErrInvalidCredentials
		}
		s.logger.Error("authenticate: lookup failed", "username", username, "err", err)
		return domain.User{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Warn("authenticate: stored hash unreadable", "user_id", user.ID, "err", err)
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return *user, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return *user, nil
}
