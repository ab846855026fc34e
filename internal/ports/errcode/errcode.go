package errcode

// Code - машинный код ошибки API, отдаётся в поле "error"
type Code string

const (
	DuplicateUsername Code = "DUPLICATE_USERNAME"
	DuplicateEmail    Code = "DUPLICATE_EMAIL"
	InvalidInput      Code = "INVALID_INPUT"

	InvalidCredentials Code = "INVALID_CREDENTIALS"
	Unauthorized       Code = "UNAUTHORIZED"

	NotFoundCoins  Code = "NOT_FOUND_COINS"
	NotFoundPrices Code = "NOT_FOUND_PRICES"
	NotTracked     Code = "NOT_TRACKED"
	NotFoundRoute  Code = "NOT_FOUND"

	MethodNotAllowed Code = "METHOD_NOT_ALLOWED"

	Upstream   Code = "UPSTREAM_ERROR"
	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
