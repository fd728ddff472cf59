package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/utils"
)

// AuthUser is the identity the provider resolves a bearer token to.
type AuthUser struct {
	ID    uuid.UUID
	Email string
}

// Client verifies Supabase access tokens. With a JWT secret configured the
// token is checked locally (HS256, same key GoTrue signs with); otherwise it
// is exchanged with the provider's /auth/v1/user endpoint. Either way a
// failure is terminal for the request, there is no retry.
type Client interface {
	GetUser(ctx context.Context, accessToken string) (*AuthUser, error)
}

type Config struct {
	URL       string
	AnonKey   string
	JWTSecret string
	Timeout   time.Duration
}

func ConfigFromEnv(log *logger.Logger) Config {
	timeoutSec := utils.GetEnvAsInt("SUPABASE_TIMEOUT_SECONDS", 10, log)
	return Config{
		URL:       strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		AnonKey:   strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		JWTSecret: strings.TrimSpace(os.Getenv("SUPABASE_JWT_SECRET")),
		Timeout:   time.Duration(timeoutSec) * time.Second,
	}
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	cfg.URL = strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/")
	if cfg.JWTSecret == "" {
		if cfg.URL == "" || cfg.AnonKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY must be set")
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "SupabaseClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) GetUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, fmt.Errorf("missing access token")
	}
	if c.cfg.JWTSecret != "" {
		return c.verifyLocal(accessToken)
	}
	return c.fetchUser(ctx, accessToken)
}

type accessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (c *client) verifyLocal(accessToken string) (*AuthUser, error) {
	claims := &accessTokenClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid or expired access token")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in access token: %w", err)
	}
	return &AuthUser{ID: id, Email: claims.Email}, nil
}

func (c *client) fetchUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.cfg.AnonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if body.ID == "" {
		return nil, fmt.Errorf("identity provider returned no subject")
	}
	id, err := uuid.Parse(body.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject from identity provider: %w", err)
	}
	return &AuthUser{ID: id, Email: body.Email}, nil
}
