package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/repositories"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

// AuthLogin stores the Hatchet user name and, when given, an access token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	token := cmd.String("token")
	if username == "" && token == "" {
		return fmt.Errorf("%w: --username or --token must be provided", shared.ErrMissingArgument)
	}

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if username != "" {
		accounts := repositories.NewAccountRepository(db)
		if err := accounts.SetAccountField(infosystem.AccountFieldUserName, username); err != nil {
			return err
		}
		// A new name invalidates the cached id.
		if err := accounts.DeleteAccountField(infosystem.AccountFieldUserID); err != nil {
			return err
		}
		r.logger.Info("stored user name", "username", username)
	}

	if token != "" {
		tok := &oauth2.Token{AccessToken: token, TokenType: cmd.String("token-type")}
		if err := repositories.NewTokenRepository(db).SaveToken(services.TokenProviderName, tok); err != nil {
			return err
		}
		r.logger.Info("stored access token")
	}

	return r.writePlain("✓ Credentials saved\n")
}

// AuthStatus reports the stored identity and whether a usable access token is present.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	fields, err := repositories.NewAccountRepository(db).ListAccountFields()
	if err != nil {
		return err
	}

	tokenState := "✓ Available"
	provider := services.NewOAuthTokenProvider(repositories.NewTokenRepository(db), r.logger)
	if _, err := provider.EnsureAccessToken(ctx); err != nil {
		switch {
		case errors.Is(err, shared.ErrTokenExpired):
			tokenState = "✗ Expired"
		default:
			tokenState = "✗ Not set"
		}
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"username": fields[infosystem.AccountFieldUserName],
			"user_id":  fields[infosystem.AccountFieldUserID],
			"token":    tokenState,
		}, true)
	}

	r.writePlain("User name: %s\n", valueOr(fields[infosystem.AccountFieldUserName], "(not set)"))
	r.writePlain("User id:   %s\n", valueOr(fields[infosystem.AccountFieldUserID], "(not resolved)"))
	return r.writePlain("Token:     %s\n", tokenState)
}

// AuthLogout removes the stored access token.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewTokenRepository(db).DeleteToken(services.TokenProviderName); err != nil {
		return err
	}
	return r.writePlain("✓ Access token removed\n")
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
