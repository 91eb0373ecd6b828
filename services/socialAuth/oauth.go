package socialAuth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	googleAuthEndpoint = "https://accounts.google.com/o/oauth2/v2/auth"
	// DefaultRedirectURI is the deployed front end's callback page.
	DefaultRedirectURI = "https://front-servineo-1wz6.vercel.app/auth/google/callback"
)

type AuthType string

const (
	AuthRegister AuthType = "register"
	AuthLogin    AuthType = "login"
)

var (
	ErrMissingClientID = errors.New("google client id no configurado")
	ErrInvalidState    = errors.New("invalid oauth state")
	ErrStateExpired    = errors.New("oauth state expired")
)

// ParseAuthType defaults to register, as the sign-up button does.
func ParseAuthType(s string) (AuthType, error) {
	switch AuthType(strings.ToLower(strings.TrimSpace(s))) {
	case "", AuthRegister:
		return AuthRegister, nil
	case AuthLogin:
		return AuthLogin, nil
	}
	return "", fmt.Errorf("unknown auth type %q", s)
}

// State is the CSRF blob carried through the Google redirect.
type State struct {
	Type      AuthType `json:"type"`
	Timestamp int64    `json:"timestamp"` // unix millis
	Nonce     string   `json:"nonce"`
}

func newNonce() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
}

// EncodeState serialises s as base64 JSON.
func EncodeState(s State) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeState parses a state blob and rejects it when older than maxAge.
func DecodeState(raw string, maxAge time.Duration, now time.Time) (*State, error) {
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if s.Nonce == "" || (s.Type != AuthRegister && s.Type != AuthLogin) {
		return nil, ErrInvalidState
	}
	issued := time.UnixMilli(s.Timestamp)
	if issued.After(now.Add(time.Minute)) {
		return nil, ErrInvalidState
	}
	if maxAge > 0 && now.Sub(issued) > maxAge {
		return nil, ErrStateExpired
	}
	return &s, nil
}

// AuthRequest is a ready to follow Google authorization redirect.
type AuthRequest struct {
	URL   string `json:"url"`
	State string `json:"state"`
	Nonce string `json:"nonce"`
}

// BuildAuthURL composes the Google consent screen URL for authType.
func BuildAuthURL(clientID, redirectURI string, authType AuthType, now time.Time) (*AuthRequest, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if redirectURI == "" {
		redirectURI = DefaultRedirectURI
	}

	state, err := EncodeState(State{Type: authType, Timestamp: now.UnixMilli(), Nonce: newNonce()})
	if err != nil {
		return nil, err
	}
	nonce := newNonce()

	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)
	params.Set("nonce", nonce)

	return &AuthRequest{
		URL:   googleAuthEndpoint + "?" + params.Encode(),
		State: state,
		Nonce: nonce,
	}, nil
}
