package socialAuth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const GoogleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleJWK represents a single JSON Web Key from Google's keys endpoint.
type GoogleJWK struct {
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type GoogleJWKResponse struct {
	Keys []GoogleJWK `json:"keys"`
}

// UserInfo holds the profile claims the registration form is prefilled with.
type UserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// GoogleVerifier checks Google ID tokens against Google's published keys.
type GoogleVerifier struct {
	CertsURL   string
	HTTPClient *http.Client
	Now        func() time.Time

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{
		CertsURL:   GoogleCertsURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Now:        time.Now,
	}
}

// publicKeys fetches and caches Google's public keys.
func (v *GoogleVerifier) publicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	v.mu.RLock()
	if v.keys != nil && v.Now().Before(v.expires) {
		defer v.mu.RUnlock()
		return v.keys, nil
	}
	v.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.CertsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google certs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch Google certs: status %d", resp.StatusCode)
	}

	var keyResp GoogleJWKResponse
	if err := json.NewDecoder(resp.Body).Decode(&keyResp); err != nil {
		return nil, fmt.Errorf("failed to decode Google keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(keyResp.Keys))
	for _, key := range keyResp.Keys {
		pubKey, err := convertJWKToPublicKey(key.N, key.E)
		if err != nil {
			return nil, fmt.Errorf("failed to convert JWK to public key: %w", err)
		}
		keys[key.Kid] = pubKey
	}

	v.mu.Lock()
	v.keys = keys
	// Google rotates keys frequently.
	v.expires = v.Now().Add(time.Hour)
	v.mu.Unlock()

	return keys, nil
}

// convertJWKToPublicKey converts base64url encoded modulus and exponent to rsa.PublicKey.
func convertJWKToPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var exp int
	for _, b := range eb {
		exp = exp<<8 + int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: exp}, nil
}

// Validate verifies tokenStr was issued by Google for audience and returns
// the profile claims.
func (v *GoogleVerifier) Validate(ctx context.Context, tokenStr, audience string) (*UserInfo, error) {
	keys, err := v.publicKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google public keys: %w", err)
	}

	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("token missing kid header")
		}
		pubKey, exists := keys[kid]
		if !exists {
			return nil, errors.New("no matching Google public key found")
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid Google ID token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse claims")
	}
	if !claims.VerifyAudience(audience, true) {
		return nil, errors.New("invalid audience in Google ID token")
	}
	if iss, ok := claims["iss"].(string); !ok || (iss != "accounts.google.com" && iss != "https://accounts.google.com") {
		return nil, errors.New("invalid issuer in Google ID token")
	}
	if !claims.VerifyExpiresAt(v.Now().Unix(), true) {
		return nil, errors.New("google ID token expired")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("email claim not found in Google ID token")
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &UserInfo{
		Email:   strings.ToLower(email),
		Name:    name,
		Picture: picture,
	}, nil
}
