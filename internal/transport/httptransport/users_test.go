package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, user, "password_hash")
	assert.Equal(t, []any{}, user["coins"])
}

func TestRegister_Duplicates(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "alice")

	rec := env.do(http.MethodPost, "/register", `{"username":"alice","email":"other@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, "Username already registered", e.Detail)
	assert.Equal(t, errcode.DuplicateUsername, e.Error)

	rec = env.do(http.MethodPost, "/register", `{"username":"bob","email":"alice@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeError(t, rec.Body.Bytes()).Detail)
}

func TestRegister_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/register", `{"username":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/register", `{"username":"a","email":"not-an-email","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errcode.InvalidInput, decodeError(t, rec.Body.Bytes()).Error)
}

func TestRegister_InternalError(t *testing.T) {
	env := newTestEnv(t)
	env.users.err = errors.New("db down")

	rec := env.do(http.MethodPost, "/register", `{"username":"a","email":"a@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestToken(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "alice")

	rec := env.login(t, "alice", "pw-alice")
	require.Equal(t, http.StatusOK, rec.Code)

	var tok TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)

	sub, err := env.tokens.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

// Неверный пароль и неизвестный пользователь неотличимы
func TestToken_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "alice")

	wrong := env.login(t, "alice", "nope")
	unknown := env.login(t, "mallory", "nope")

	for _, rec := range []*httptest.ResponseRecorder{wrong, unknown} {
		resp := rec.Result()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	}
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	assert.Equal(t, "Incorrect username or password", decodeError(t, wrong.Body.Bytes()).Detail)
}

func TestToken_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	rec := env.login(t, "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice")

	rec := env.do(http.MethodPost, "/users/coins/1", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/users/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var me UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, []CoinBrief{{Name: "Bitcoin", Symbol: "btc"}}, me.Coins)
}

func TestMe_Unauthorized(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "alice")

	// exp округляется до секунды вниз, через несколько миллисекунд токен уже просрочен
	expired, err := env.tokens.Issue("alice", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	cases := map[string]string{
		"missing":   "",
		"malformed": "not-a-jwt",
		"forged":    forgeToken(t, "alice"),
		"expired":   expired,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/users/me", "", token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

// Пользователь удалён после выдачи токена - 401
func TestMe_UserVanished(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice")
	env.users.delete("alice")

	rec := env.do(http.MethodGet, "/users/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_WrongScheme(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice")

	req := newRequest(http.MethodGet, "/users/me")
	req.Header.Set("Authorization", "Basic "+token)
	rec := serve(env, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
