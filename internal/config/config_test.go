package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv limpia la variable para el test y la restaura al terminar
// (t.Setenv registra el valor original en el cleanup).
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		if valor, ok := os.LookupEnv(key); ok {
			t.Setenv(key, valor)
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "MONGO_URI", "MONGO_DB_NAME", "RABBIT_URL", "LOG_LEVEL")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "pinateria", cfg.MongoDBName)
	assert.Empty(t, cfg.RabbitURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Entorno(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB_NAME", "pinateria_test")
	t.Setenv("RABBIT_URL", "amqp://rabbit")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "pinateria_test", cfg.MongoDBName)
	assert.Equal(t, "amqp://rabbit", cfg.RabbitURL)
}
