// config.go
package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	MongoURI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName string `env:"MONGO_DB_NAME" envDefault:"pinateria"`

	// Vacío = el servicio corre sin publicar eventos
	RabbitURL string `env:"RABBIT_URL"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
