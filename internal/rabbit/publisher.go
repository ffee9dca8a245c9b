// publisher.go
package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const ExchangeName = "pedidos_events"

// Publisher emite los eventos del ciclo de vida de los pedidos en un
// exchange fanout, para que otros servicios (notificaciones, reportes)
// se enteren sin acoplarse a esta API.
type Publisher struct {
	ch *amqp091.Channel
}

func NewPublisher(ch *amqp091.Channel) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		ExchangeName,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

// Event es el sobre con el que viajan los mensajes.
type Event struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       any    `json:"message"`
}

func newEvent(routingKey string, payload any) Event {
	return Event{
		CorrelationID: uuid.NewString(),
		Exchange:      ExchangeName,
		RoutingKey:    routingKey,
		Message:       payload,
	}
}

// Publish es best effort: un broker caído se loguea y la petición
// HTTP sigue su curso normal.
func (p *Publisher) Publish(routingKey string, payload any) {
	body, err := json.Marshal(newEvent(routingKey, payload))
	if err != nil {
		log.WithError(err).Warn("no se pudo serializar el evento")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(
		ctx,
		ExchangeName,
		routingKey, // fanout ignora routing key, queda para trazas
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.WithError(err).WithField("evento", routingKey).Warn("no se pudo publicar el evento")
	}
}
