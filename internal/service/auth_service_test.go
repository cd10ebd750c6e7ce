package service

import (
	"context"
	"testing"
	"time"

	"note-sharing-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestLogoutRevocation(t *testing.T) {
	ctx := context.Background()
	revoked := memory.NewRevokedTokenStore(time.Hour)
	auth := NewAuthService(nil, revoked, time.Hour, noopLogger{})

	t.Run("Revokes until token expiry", func(t *testing.T) {
		auth.Logout(ctx, "jti-expiring", time.Now().Add(30*time.Minute))
		assert.True(t, revoked.IsRevoked("jti-expiring"))
	})

	t.Run("Missing expiry still revokes for a full lifetime", func(t *testing.T) {
		auth.Logout(ctx, "jti-no-exp", time.Time{})
		assert.True(t, revoked.IsRevoked("jti-no-exp"))
	})

	t.Run("Past expiry still revokes", func(t *testing.T) {
		auth.Logout(ctx, "jti-stale", time.Now().Add(-time.Minute))
		assert.True(t, revoked.IsRevoked("jti-stale"))
	})

	t.Run("Empty token id is ignored", func(t *testing.T) {
		auth.Logout(ctx, "", time.Now().Add(time.Hour))
		assert.False(t, revoked.IsRevoked(""))
	})
}
