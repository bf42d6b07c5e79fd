package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Gera uuid quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Mantém o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "abc-123")
		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Equal(t, "", GetCorrelationID(context.Background()))
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Setup("debug"))
	assert.Equal(t, logrus.InfoLevel, Setup("nao-existe"))
}

func TestWithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: logrus.NewEntry(logrus.New())}

	filtered := base.WithFields(Fields{"method": "GET", "user_agent": "curl", "snapshot_id": "x"}).(*logger)
	assert.Equal(t, logrus.Fields{"method": "GET", "snapshot_id": "x"}, filtered.entry.Data)

	same := base.WithField("user_agent", "curl")
	assert.Same(t, base, same)
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base := &logger{entry: logrus.NewEntry(logrus.New())}
	all := base.WithFields(Fields{"method": "GET", "user_agent": "curl"}).(*logger)
	assert.Equal(t, logrus.Fields{"method": "GET", "user_agent": "curl"}, all.entry.Data)
}
