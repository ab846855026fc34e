package httptransport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/auth"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

// fakeUsers - пользователи в памяти, пароль хранится как есть
type fakeUsers struct {
	mu     sync.Mutex
	byName map[string]domain.User
	pass   map[string]string
	nextID int64
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]domain.User{}, pass: map[string]string{}, nextID: 1}
}

func (f *fakeUsers) Register(_ context.Context, username, email, password string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.User{}, f.err
	}
	if username == "" || password == "" || !strings.Contains(email, "@") {
		return domain.User{}, domain.ErrInvalidInput
	}
	if _, ok := f.byName[username]; ok {
		return domain.User{}, domain.ErrDuplicateUsername
	}
	for _, u := range f.byName {
		if u.Email == email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	u := domain.User{ID: f.nextID, Username: username, Email: email, PasswordHash: "hash:" + password, CreatedAt: time.Now().UTC()}
	f.nextID++
	f.byName[username] = u
	f.pass[username] = password
	return u, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, username, password string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byName[username]
	if !ok || f.pass[username] != password {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byName[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) delete(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byName, username)
}

// fakeWatchlist - монеты 1..3 существуют
type fakeWatchlist struct {
	mu      sync.Mutex
	coins   map[int64]domain.Coin
	tracked map[int64]map[int64]bool
}

func newFakeWatchlist() *fakeWatchlist {
	return &fakeWatchlist{
		coins: map[int64]domain.Coin{
			1: {ID: 1, Name: "Bitcoin", Symbol: "btc"},
			2: {ID: 2, Name: "Ethereum", Symbol: "eth"},
			3: {ID: 3, Name: "Solana", Symbol: "sol"},
		},
		tracked: map[int64]map[int64]bool{},
	}
}

func (f *fakeWatchlist) Add(_ context.Context, userID, coinID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.coins[coinID]; !ok {
		return domain.ErrCoinNotFound
	}
	if f.tracked[userID] == nil {
		f.tracked[userID] = map[int64]bool{}
	}
	f.tracked[userID][coinID] = true
	return nil
}

func (f *fakeWatchlist) Remove(_ context.Context, userID, coinID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.coins[coinID]; !ok {
		return domain.ErrCoinNotFound
	}
	if !f.tracked[userID][coinID] {
		return domain.ErrNotTracked
	}
	delete(f.tracked[userID], coinID)
	return nil
}

func (f *fakeWatchlist) List(_ context.Context, userID int64) ([]domain.Coin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Coin{}
	for _, id := range []int64{1, 2, 3} {
		if f.tracked[userID][id] {
			out = append(out, f.coins[id])
		}
	}
	return out, nil
}

func (f *fakeWatchlist) IsTracking(_ context.Context, userID, coinID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tracked[userID][coinID], nil
}

// fakeRates - история хранится по имени монеты, сначала новые
type fakeRates struct {
	latest  []domain.LatestPrice
	history map[string][]domain.PriceObservation
	ids     map[string]int64
	wl      *fakeWatchlist
	err     error
}

func (f *fakeRates) GetLatestPrices(context.Context) ([]domain.LatestPrice, error) {
	return f.latest, f.err
}

func (f *fakeRates) GetHistory(_ context.Context, coinName string) ([]domain.PriceObservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.ids[coinName]; !ok {
		return nil, domain.ErrCoinNotFound
	}
	h := f.history[coinName]
	if len(h) == 0 {
		return nil, domain.ErrPriceNotFound
	}
	return h, nil
}

func (f *fakeRates) GetUserHistory(ctx context.Context, userID int64, coinName string) ([]domain.PriceObservation, error) {
	id, ok := f.ids[coinName]
	if !ok {
		return nil, domain.ErrCoinNotFound
	}
	tracking, _ := f.wl.IsTracking(ctx, userID, id)
	if !tracking {
		return nil, domain.ErrNotTracked
	}
	return f.GetHistory(ctx, coinName)
}

func (f *fakeRates) ListCoins(context.Context) ([]domain.Coin, error) {
	return []domain.Coin{{ID: 1, Name: "Bitcoin", Symbol: "btc"}}, f.err
}

type fakeSync struct {
	res fetch.SyncResult
	err error
}

func (f *fakeSync) Sync(context.Context) (fetch.SyncResult, error) { return f.res, f.err }

type testEnv struct {
	e      *echo.Echo
	users  *fakeUsers
	wl     *fakeWatchlist
	rates  *fakeRates
	sync   *fakeSync
	tokens *auth.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		users:  newFakeUsers(),
		wl:     newFakeWatchlist(),
		sync:   &fakeSync{},
		tokens: auth.NewTokenIssuer(testSecret, 30*time.Minute),
	}
	env.rates = &fakeRates{
		ids:     map[string]int64{"Bitcoin": 1, "Ethereum": 2, "Solana": 3},
		history: map[string][]domain.PriceObservation{},
		wl:      env.wl,
	}
	env.e = NewRouter(Deps{
		Logger:    logger,
		Timeout:   time.Second,
		Users:     env.users,
		Resolver:  env.users,
		Tokens:    env.tokens,
		Watchlist: env.wl,
		Rates:     env.rates,
		Sync:      env.sync,
	})
	return env
}

func (env *testEnv) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin - регистрирует пользователя и возвращает его токен
func (env *testEnv) registerAndLogin(t *testing.T, username string) string {
	t.Helper()
	body := `{"username":"` + username + `","email":"` + username + `@example.com","password":"pw-` + username + `"}`
	rec := env.do(http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, err := env.tokens.Issue(username, 0)
	require.NoError(t, err)
	return token
}
