package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/config"
	bboltstore "github.com/minhle/roomstay/credstore/bbolt"
	"github.com/minhle/roomstay/internal/util"
	"github.com/minhle/roomstay/session"
)

const (
	credDBFile = "credentials.db"
	keyFile    = "credentials.key"
)

// genericLoadFailure is shown when a read from the backend fails without
// a usable domain message.
const genericLoadFailure = "Không thể tải dữ liệu. Vui lòng thử lại."

// app wires the configuration, the sealed credential store, the API
// client, and the session store together for a single CLI invocation.
type app struct {
	cfg      *config.Config
	creds    *bboltstore.Store
	keeper   *session.TokenKeeper
	api      *client.Client
	sessions *session.Store
	log      *slog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	secret, err := loadOrCreateSecret(filepath.Join(cfg.DataDir, keyFile))
	if err != nil {
		return nil, err
	}
	defer util.WipeBytes(secret)

	creds, err := bboltstore.NewStoreFromFile(filepath.Join(cfg.DataDir, credDBFile), secret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	logLevel := slog.LevelWarn
	if os.Getenv("ROOMSTAY_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	keeper := session.NewTokenKeeper(creds)
	api, err := client.New(cfg.BaseURL, cfg.APIKey,
		client.WithTokenSource(keeper),
		client.WithLogger(log),
	)
	if err != nil {
		creds.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		creds:    creds,
		keeper:   keeper,
		api:      api,
		sessions: session.NewStore(api, creds, keeper, session.WithLogger(log)),
		log:      log,
	}, nil
}

func (a *app) Close() {
	if err := a.creds.Close(); err != nil {
		a.log.Warn("closing credential store failed", "error", err)
	}
}

// signedInUser hydrates the session from the persisted credential and
// returns the current user, or an error telling the caller to sign in.
func (a *app) signedInUser(ctx context.Context) (client.User, error) {
	if _, err := a.sessions.Hydrate(ctx); err != nil {
		return client.User{}, err
	}
	user, ok := a.sessions.CurrentUser()
	if !ok {
		return client.User{}, fmt.Errorf("not signed in, run \"roomstay signin\" first")
	}
	return user, nil
}

// loadOrCreateSecret reads the wrapping secret for the credential store,
// generating a fresh one on first run.
func loadOrCreateSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) != util.AESKeySize {
			return nil, fmt.Errorf("keyfile %s has %d bytes, want %d", path, len(secret), util.AESKeySize)
		}
		return secret, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read keyfile: %w", err)
	}

	secret, err = util.RandomBytes(util.AESKeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keyfile: %w", err)
	}
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write keyfile: %w", err)
	}
	return secret, nil
}
