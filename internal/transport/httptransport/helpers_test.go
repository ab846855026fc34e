package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/auth"
	"github.com/stretchr/testify/require"
)

// forgeToken - токен, подписанный чужим ключом
func forgeToken(t *testing.T, subject string) string {
	t.Helper()
	other := auth.NewTokenIssuer("another-secret-9876543210", time.Minute)
	token, err := other.Issue(subject, time.Minute)
	require.NoError(t, err)
	return token
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
