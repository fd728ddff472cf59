package services

import (
	"context"
	"fmt"

	"github.com/yungbote/focusbridge-backend/internal/clients/supabase"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/requestdata"
)

type AuthService interface {
	// SetContextFromToken verifies the bearer token and returns a context
	// carrying the resolved identity for the rest of the request.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log      *logger.Logger
	verifier supabase.Client
}

func NewAuthService(log *logger.Logger, verifier supabase.Client) AuthService {
	return &authService{log: log.With("service", "AuthService"), verifier: verifier}
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	user, err := as.verifier.GetUser(ctx, tokenString)
	if err != nil {
		return ctx, fmt.Errorf("verify token: %w", err)
	}
	return requestdata.WithAuthUser(ctx, &requestdata.AuthUser{
		ID:    user.ID,
		Email: user.Email,
	}), nil
}
