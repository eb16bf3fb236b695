package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/roberto426/Examen2-7234547/models"
)

// IEventPublisher emits domain events after successful writes.
type IEventPublisher interface {
	PedidoRegistrado(ctx context.Context, pedido *models.Pedido) error
	ClienteEliminado(ctx context.Context, idCliente uint) error
}

// KafkaEventPublisher publishes JSON events through an IKafkaService.
type KafkaEventPublisher struct {
	kafka IKafkaService
	topic string
	now   func() time.Time
}

// NewKafkaEventPublisher creates a publisher writing to topic.
func NewKafkaEventPublisher(kafka IKafkaService, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		kafka: kafka,
		topic: topic,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (p *KafkaEventPublisher) PedidoRegistrado(_ context.Context, pedido *models.Pedido) error {
	return p.publish(strconv.FormatUint(uint64(pedido.ID), 10), models.Evento{
		Tipo:   models.EventoPedidoRegistrado,
		Pedido: pedido,
	})
}

func (p *KafkaEventPublisher) ClienteEliminado(_ context.Context, idCliente uint) error {
	return p.publish(strconv.FormatUint(uint64(idCliente), 10), models.Evento{
		Tipo:      models.EventoClienteEliminado,
		IDCliente: &idCliente,
	})
}

func (p *KafkaEventPublisher) publish(key string, evento models.Evento) error {
	evento.ID = uuid.NewString()
	evento.Ocurrido = p.now()

	payload, err := json.Marshal(evento)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", evento.Tipo, err)
	}
	if err := p.kafka.PushMessage(p.topic, key, payload); err != nil {
		return fmt.Errorf("failed to push %s event to Kafka: %w", evento.Tipo, err)
	}
	return nil
}

// NoopEventPublisher discards events; used when Kafka is disabled.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PedidoRegistrado(context.Context, *models.Pedido) error { return nil }

func (NoopEventPublisher) ClienteEliminado(context.Context, uint) error { return nil }
