package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/config"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/controller"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/metrics"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/middleware"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/rabbit"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/repository"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/service"
)

func main() {
	// .env es opcional: en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Conexión a RabbitMQ (opcional: sin broker no hay eventos)
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		if p, err := connectRabbit(cfg.RabbitURL); err != nil {
			log.WithError(err).Warn("RabbitMQ no disponible, se omite la publicación de eventos")
		} else {
			publisher = p
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Repositorios y servicios
	pedidoRepo := repository.NewMongoPedidoRepository(db)
	productoRepo := repository.NewMongoProductoRepository(db)
	pedidoService := service.NewPedidoService(pedidoRepo, publisher, m)
	productoService := service.NewProductoService(productoRepo, m)

	// Handlers
	pedidoCtrl := controller.NewPedidoController(pedidoService)
	productoCtrl := controller.NewProductoController(productoService)

	// Router
	r := gin.New()
	r.Use(middleware.RequestLogger(log.StandardLogger()), gin.Recovery(), cors.Default())

	controller.NewRouter(pedidoCtrl, productoCtrl).SetUp(r)

	// Ejecutar servidor
	log.Infof("API Piñatería Las Palmas ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func connectRabbit(url string) (*rabbit.Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return rabbit.NewPublisher(ch)
}
