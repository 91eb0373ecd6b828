package socialAuth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestBuildAuthURL(t *testing.T) {
	req, err := BuildAuthURL("client-123", "", AuthLogin, testNow)
	require.NoError(t, err)

	u, err := url.Parse(req.URL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, DefaultRedirectURI, q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, req.Nonce, q.Get("nonce"))

	state, err := DecodeState(q.Get("state"), 10*time.Minute, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, AuthLogin, state.Type)
	assert.Equal(t, testNow.UnixMilli(), state.Timestamp)
	assert.NotEmpty(t, state.Nonce)
}

func TestBuildAuthURLNeedsClientID(t *testing.T) {
	_, err := BuildAuthURL("", "", AuthRegister, testNow)
	assert.ErrorIs(t, err, ErrMissingClientID)
}

func TestDecodeStateRejectsBadInput(t *testing.T) {
	_, err := DecodeState("%%%", time.Minute, testNow)
	assert.ErrorIs(t, err, ErrInvalidState)

	raw, _ := EncodeState(State{Type: "admin", Timestamp: testNow.UnixMilli(), Nonce: "x"})
	_, err = DecodeState(raw, time.Minute, testNow)
	assert.ErrorIs(t, err, ErrInvalidState)

	raw, _ = EncodeState(State{Type: AuthRegister, Timestamp: testNow.UnixMilli(), Nonce: "x"})
	_, err = DecodeState(raw, time.Minute, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrStateExpired)
}

func TestParseAuthType(t *testing.T) {
	a, err := ParseAuthType("")
	require.NoError(t, err)
	assert.Equal(t, AuthRegister, a)
	a, err = ParseAuthType("LOGIN")
	require.NoError(t, err)
	assert.Equal(t, AuthLogin, a)
	_, err = ParseAuthType("other")
	assert.Error(t, err)
}

func jwksServer(t *testing.T, kid string, key *rsa.PublicKey) *httptest.Server {
	t.Helper()
	e := big.NewInt(int64(key.E)).Bytes()
	body, err := json.Marshal(GoogleJWKResponse{Keys: []GoogleJWK{{
		Kid: kid,
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(e),
	}}})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestGoogleVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := jwksServer(t, "k1", &key.PublicKey)

	v := NewGoogleVerifier()
	v.CertsURL = srv.URL
	v.HTTPClient = srv.Client()
	v.Now = func() time.Time { return testNow }

	claims := jwt.MapClaims{
		"iss":     "https://accounts.google.com",
		"aud":     "client-123",
		"exp":     testNow.Add(time.Hour).Unix(),
		"email":   "Ana.Perez@Example.com",
		"name":    "Ana Pérez",
		"picture": "https://example.com/a.png",
	}
	info, err := v.Validate(context.Background(), signToken(t, key, "k1", claims), "client-123")
	require.NoError(t, err)
	assert.Equal(t, "ana.perez@example.com", info.Email)
	assert.Equal(t, "Ana Pérez", info.Name)

	_, err = v.Validate(context.Background(), signToken(t, key, "k1", claims), "someone-else")
	assert.Error(t, err)

	claims["exp"] = testNow.Add(-time.Minute).Unix()
	_, err = v.Validate(context.Background(), signToken(t, key, "k1", claims), "client-123")
	assert.Error(t, err)

	claims["exp"] = testNow.Add(time.Hour).Unix()
	_, err = v.Validate(context.Background(), signToken(t, key, "unknown", claims), "client-123")
	assert.Error(t, err)

	claims["iss"] = "evil.example.com"
	_, err = v.Validate(context.Background(), signToken(t, key, "k1", claims), "client-123")
	assert.Error(t, err)
}

func TestNonceShape(t *testing.T) {
	n := newNonce()
	assert.Len(t, n, 13)
	assert.False(t, strings.Contains(n, "-"))
}
