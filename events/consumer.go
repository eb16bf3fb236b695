package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/roberto426/Examen2-7234547/models"
)

// OffsetSource resolves partition offsets. sarama.Client implements it.
type OffsetSource interface {
	GetOffset(topic string, partitionID int32, time int64) (int64, error)
}

// NewConsumerConfig returns the consumer settings of the demand aggregator.
func NewConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.IsolationLevel = sarama.ReadCommitted
	config.Version = sarama.V2_1_0_0
	return config
}

// decodeEvento decodes an event strictly; unknown fields are rejected.
func decodeEvento(value []byte) (models.Evento, error) {
	var evento models.Evento
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&evento); err != nil {
		return models.Evento{}, err
	}
	return evento, nil
}

// RecoverState reads the compacted demand topic from the beginning of every
// partition up to its current end. A partition that stays silent for idle
// is treated as fully read.
func (a *DemandAggregator) RecoverState(ctx context.Context, consumer sarama.Consumer, offsets OffsetSource, idle time.Duration) error {
	log.Printf("Recovering state from compacted topic '%s'...", a.outputTopic)

	partitions, err := consumer.Partitions(a.outputTopic)
	if err != nil {
		return fmt.Errorf("failed to list partitions of %s: %w", a.outputTopic, err)
	}

	for _, partition := range partitions {
		oldest, err := offsets.GetOffset(a.outputTopic, partition, sarama.OffsetOldest)
		if err != nil {
			return fmt.Errorf("failed to get oldest offset of %s/%d: %w", a.outputTopic, partition, err)
		}
		newest, err := offsets.GetOffset(a.outputTopic, partition, sarama.OffsetNewest)
		if err != nil {
			return fmt.Errorf("failed to get newest offset of %s/%d: %w", a.outputTopic, partition, err)
		}
		if newest <= oldest {
			continue
		}

		if err := a.recoverPartition(ctx, consumer, partition, newest, idle); err != nil {
			return err
		}
	}

	log.Printf("State recovery complete. Loaded %d productos.", a.Len())
	return nil
}

func (a *DemandAggregator) recoverPartition(ctx context.Context, consumer sarama.Consumer, partition int32, newest int64, idle time.Duration) error {
	pc, err := consumer.ConsumePartition(a.outputTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("failed to consume %s/%d: %w", a.outputTopic, partition, err)
	}
	defer pc.Close()

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for {
		select {
		case msg, ok := <-pc.Messages():
			if !ok {
				return nil
			}
			if err := a.restore(msg.Key, msg.Value); err != nil {
				log.Printf("Skipping record %s/%d@%d during recovery: %v", msg.Topic, msg.Partition, msg.Offset, err)
			}
			if msg.Offset >= newest-1 {
				return nil
			}
			timer.Reset(idle)
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// consumerGroupHandler feeds a DemandAggregator from a consumer group claim.
type consumerGroupHandler struct {
	aggregator *DemandAggregator
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks every message once handled. Malformed events are
// logged and skipped so a single bad record cannot stall the partition.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			evento, err := decodeEvento(msg.Value)
			if err != nil {
				log.Printf("json decode error at %s [%d] @%d: %v; raw=%q", msg.Topic, msg.Partition, msg.Offset, err, string(msg.Value))
			} else if err := h.aggregator.ProcessEvento(evento); err != nil {
				log.Printf("Failed to publish demand for event %s: %v", evento.ID, err)
			}
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Run consumes topic with the given group until ctx is cancelled.
func Run(ctx context.Context, group sarama.ConsumerGroup, topic string, aggregator *DemandAggregator) error {
	handler := &consumerGroupHandler{aggregator: aggregator}
	log.Printf("Starting demand aggregator. Consuming from '%s', publishing to compacted '%s'.", topic, aggregator.outputTopic)

	for {
		if err := group.Consume(ctx, []string{topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("consumer group error: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
