package httptransport

import (
	"errors"
	"net/http"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/auth"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// FromServiceError - переводит ошибку сервисного слоя в код API
func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return errcode.DuplicateUsername
	case errors.Is(err, domain.ErrDuplicateEmail):
		return errcode.DuplicateEmail
	case errors.Is(err, domain.ErrInvalidInput):
		return errcode.InvalidInput
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errcode.InvalidCredentials
	case errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, domain.ErrUserNotFound):
		return errcode.Unauthorized
	case errors.Is(err, domain.ErrCoinNotFound):
		return errcode.NotFoundCoins
	case errors.Is(err, domain.ErrPriceNotFound):
		return errcode.NotFoundPrices
	case errors.Is(err, domain.ErrNotTracked):
		return errcode.NotTracked
	case errors.Is(err, domain.ErrUpstream):
		return errcode.Upstream
	default:
		return errcode.Internal
	}
}

// StatusFor - HTTP-статус для кода ошибки
func StatusFor(code errcode.Code) int {
	switch code {
	case errcode.DuplicateUsername, errcode.DuplicateEmail, errcode.InvalidInput, errcode.BadRequest:
		return http.StatusBadRequest
	case errcode.InvalidCredentials, errcode.Unauthorized:
		return http.StatusUnauthorized
	case errcode.NotFoundCoins, errcode.NotFoundPrices, errcode.NotTracked, errcode.NotFoundRoute:
		return http.StatusNotFound
	case errcode.MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errcode.Upstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Detail string       `json:"detail"`
	Error  errcode.Code `json:"error"`
}

// writeError - пишет ошибку в едином формате. Для 401 добавляет WWW-Authenticate.
func writeError(c echo.Context, code errcode.Code, detail string) error {
	status := StatusFor(code)
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return c.JSON(status, ErrorResponse{Detail: detail, Error: code})
}
