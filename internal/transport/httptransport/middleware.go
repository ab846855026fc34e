package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/auth"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/metrics"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	userContextKey     = "current_user"
	detailUnauthorized = "Could not validate credentials"
)

// TokenVerifier - проверка токена, возвращает subject (username)
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver - поиск пользователя по subject токена
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// BearerAuth - middleware: токен из Authorization: Bearer <t> -> пользователь в контексте.
// Нет токена, токен плохой или просрочен, пользователя больше нет - 401.
func BearerAuth(tokens TokenVerifier, users UserResolver, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthFailures.WithLabelValues("missing_token").Inc()
				return writeError(c, errcode.Unauthorized, "Not authenticated")
			}

			username, err := tokens.Verify(raw)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, auth.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthFailures.WithLabelValues(reason).Inc()
				logger.Debug("token rejected", slog.String("reason", reason))
				return writeError(c, errcode.Unauthorized, detailUnauthorized)
			}

			user, err := users.GetByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailures.WithLabelValues("unknown_user").Inc()
					return writeError(c, errcode.Unauthorized, detailUnauthorized)
				}
				logger.Error("resolve token subject", slog.String("error", err.Error()))
				return writeError(c, errcode.Internal, "internal server error")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUser - пользователь, положенный в контекст BearerAuth
func currentUser(c echo.Context) (domain.User, bool) {
	u, ok := c.Get(userContextKey).(domain.User)
	return u, ok
}

// RequestID - X-Request-ID из запроса или новый UUID
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger - лог каждого запроса через slog
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				level = slog.LevelError
			} else if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "http request", attrs...)
			return nil
		},
	})
}

// ErrorHandler - ошибки echo (неизвестный маршрут, неверный метод) в едином формате
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger.Error("unhandled error", slog.String("error", err.Error()))
			_ = writeError(c, errcode.Internal, "internal server error")
			return
		}

		code := errcode.BadRequest
		switch he.Code {
		case http.StatusNotFound:
			code = errcode.NotFoundRoute
		case http.StatusMethodNotAllowed:
			code = errcode.MethodNotAllowed
		case http.StatusUnauthorized:
			code = errcode.Unauthorized
		case http.StatusInternalServerError:
			code = errcode.Internal
		}

		detail := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			detail = msg
		}
		if err := c.JSON(he.Code, ErrorResponse{Detail: detail, Error: code}); err != nil {
			logger.Error("write error response", slog.String("error", err.Error()))
		}
	}
}
