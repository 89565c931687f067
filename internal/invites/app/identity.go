package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/vouch/pkg/jwtx"
)

// initIdentity builds the access token verifier. With a JWKS URL it also
// returns the key set so readiness can report whether keys are loaded.
func initIdentity(cfg Config, logger *slog.Logger) (jwtx.Verifier, *jwtx.KeySet, *KeyRefresher) {
	opts := jwtx.VerifyOptions{
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Leeway:   cfg.JWTLeeway,
	}

	if cfg.JWTSecret != "" {
		logger.Info("verifying access tokens with a shared secret")
		return jwtx.NewVerifierHS256([]byte(cfg.JWTSecret), opts), nil, nil
	}

	keys := jwtx.NewKeySet()
	refresher := NewKeyRefresher(keys, cfg.JWKSURL, logger, cfg.JWKSRefreshInterval)
	logger.Info("verifying access tokens against JWKS", "url", cfg.JWKSURL)
	return jwtx.NewKeySetVerifier(keys, opts), keys, refresher
}

// KeyRefresher periodically reloads the identity provider's signing keys so
// rotations are picked up without a restart.
type KeyRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeyRefresher creates a refresher. If interval is 0 or negative,
// defaults to 10 minutes.
func NewKeyRefresher(keys *jwtx.KeySet, url string, logger *slog.Logger, interval time.Duration) *KeyRefresher {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &KeyRefresher{
		Keys:     keys,
		URL:      url,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh fetches the key set once and swaps it in.
func (k *KeyRefresher) Refresh(ctx context.Context) error {
	set, err := jwtx.FetchJWKS(ctx, k.Client, k.URL)
	if err != nil {
		return err
	}
	if err := k.Keys.Replace(set); err != nil {
		return fmt.Errorf("load jwks: %w", err)
	}
	return nil
}

// Start loads the keys and keeps them fresh in the background. A failed
// first load is logged; requests are rejected and readiness fails until a
// later refresh succeeds.
func (k *KeyRefresher) Start() {
	go k.run()
	k.Logger.Info("jwks refresher started", "interval", k.Interval)
}

// Stop blocks until the worker has exited.
func (k *KeyRefresher) Stop() {
	close(k.stopCh)
	<-k.doneCh
	k.Logger.Info("jwks refresher stopped")
}

func (k *KeyRefresher) run() {
	defer close(k.doneCh)

	ticker := time.NewTicker(k.Interval)
	defer ticker.Stop()

	k.refresh()

	for {
		select {
		case <-ticker.C:
			k.refresh()
		case <-k.stopCh:
			return
		}
	}
}

func (k *KeyRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), k.Client.Timeout)
	defer cancel()

	if err := k.Refresh(ctx); err != nil {
		k.Logger.Error("failed to refresh jwks", "error", err, "url", k.URL)
		return
	}
	k.Logger.Debug("jwks refreshed")
}
