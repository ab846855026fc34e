package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/metrics"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// UsersService - регистрация и вход.
type UsersService interface {
	Register(ctx context.Context, username, email, password string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}

// TokenIssuer - выпуск токенов доступа.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	TTL() time.Duration
}

// CoinLister - монеты из списка пользователя.
type CoinLister interface {
	List(ctx context.Context, userID int64) ([]domain.Coin, error)
}

// CoinBrief - монета в составе профиля пользователя.
type CoinBrief struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// UserResponse - DTO пользователя. Хэш пароля сюда не попадает.
type UserResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"created_at"`
	Coins     []CoinBrief `json:"coins"`
}

func makeUser(u domain.User, coins []domain.Coin) UserResponse {
	out := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Coins:     make([]CoinBrief, 0, len(coins)),
	}
	for _, c := range coins {
		out.Coins = append(out.Coins, CoinBrief{Name: c.Name, Symbol: c.Symbol})
	}
	return out
}

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// TokenResponse - ответ POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UsersHandler - HTTP‑handler регистрации, входа и профиля.
type UsersHandler struct {
	logger  *slog.Logger
	users   UsersService
	tokens  TokenIssuer
	coins   CoinLister
	timeout time.Duration
}

func NewUsersHandler(logger *slog.Logger, users UsersService, tokens TokenIssuer, coins CoinLister, timeout time.Duration) *UsersHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UsersHandler{
		logger:  logger,
		users:   users,
		tokens:  tokens,
		coins:   coins,
		timeout: timeout,
	}
}

func (h *UsersHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.POST("/register", h.Register)
	e.POST("/token", h.Token)
	e.GET("/users/me", h.Me, authMW)
}

func (h *UsersHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errcode.InvalidInput, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.DuplicateUsername:
			return writeError(c, code, "Username already registered")
		case errcode.DuplicateEmail:
			return writeError(c, code, "Email already registered")
		case errcode.InvalidInput:
			return writeError(c, code, "Username, valid email and password are required")
		default:
			h.logger.Error("Register failed",
				slog.String("op", "Register"),
				slog.String("error", err.Error()),
			)
			return writeError(c, errcode.Internal, "internal server error")
		}
	}

	h.logger.Info("user registered", slog.Int64("user_id", user.ID))
	return c.JSON(http.StatusOK, makeUser(user, nil))
}

// Token - вход по форме username/password (OAuth2 password flow).
func (h *UsersHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return writeError(c, errcode.InvalidInput, "username and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.users.Authenticate(ctx, username, password)
	if err != nil {
		code := FromServiceError(err)
		if code == errcode.InvalidCredentials {
			metrics.AuthFailures.WithLabelValues("credentials").Inc()
			return writeError(c, code, "Incorrect username or password")
		}
		h.logger.Error("Authenticate failed",
			slog.String("op", "Token"),
			slog.String("error", err.Error()),
		)
		return writeError(c, errcode.Internal, "internal server error")
	}

	token, err := h.tokens.Issue(user.Username, h.tokens.TTL())
	if err != nil {
		h.logger.Error("issue token failed", slog.String("error", err.Error()))
		return writeError(c, errcode.Internal, "internal server error")
	}

	metrics.TokensIssued.Inc()
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *UsersHandler) Me(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return writeError(c, errcode.Unauthorized, detailUnauthorized)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	coins, err := h.coins.List(ctx, user.ID)
	if err != nil {
		h.logger.Error("list user coins failed",
			slog.String("op", "Me"),
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return writeError(c, errcode.Internal, "internal server error")
	}
	return c.JSON(http.StatusOK, makeUser(user, coins))
}
