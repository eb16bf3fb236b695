// Package events consumes the domain events published by the HTTP service
// and keeps a running product demand table on top of them.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/roberto426/Examen2-7234547/models"
)

// Producer sends a keyed message to a topic.
type Producer interface {
	PushMessage(topic, key string, message []byte) error
}

// seenLimit bounds how many event ids are remembered for deduplication.
const seenLimit = 4096

// DemandAggregator counts detalle lines per product across every
// pedido.registrado event and publishes each new count, keyed by product id,
// to a compacted topic. The compacted topic is the durable copy of the
// table; RecoverState rebuilds the map from it.
//
// Delivery is at least once. Redelivered events are skipped by id while the
// process runs; ids seen before a restart are not remembered.
type DemandAggregator struct {
	mu          sync.Mutex
	counts      map[uint]int64
	seen        map[string]struct{}
	seenOrder   []string
	outputTopic string
	producer    Producer
}

// NewDemandAggregator creates an empty aggregator writing to outputTopic.
func NewDemandAggregator(outputTopic string, producer Producer) *DemandAggregator {
	return &DemandAggregator{
		counts:      make(map[uint]int64),
		seen:        make(map[string]struct{}),
		outputTopic: outputTopic,
		producer:    producer,
	}
}

// ProcessEvento applies one event. Events other than pedido.registrado are
// ignored. The in-memory table is updated even when publishing fails.
func (a *DemandAggregator) ProcessEvento(evento models.Evento) error {
	if evento.Tipo != models.EventoPedidoRegistrado || evento.Pedido == nil {
		return nil
	}

	lineas := make(map[uint]int64)
	var orden []uint
	for _, d := range evento.Pedido.Detalles {
		if _, seen := lineas[d.IDProducto]; !seen {
			orden = append(orden, d.IDProducto)
		}
		lineas[d.IDProducto]++
	}

	updates := make([]models.DemandaProducto, 0, len(orden))
	a.mu.Lock()
	if !a.markSeen(evento.ID) {
		a.mu.Unlock()
		log.Printf("Skipping duplicate event %s for pedido %d", evento.ID, evento.Pedido.ID)
		return nil
	}
	for _, id := range orden {
		a.counts[id] += lineas[id]
		updates = append(updates, models.DemandaProducto{IDProducto: id, Cantidad: a.counts[id]})
	}
	a.mu.Unlock()

	log.Printf("Pedido %d processed: %d productos updated", evento.Pedido.ID, len(updates))

	var merr *multierror.Error
	for _, u := range updates {
		if err := a.publish(u); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// markSeen records id and reports whether it was new. Events without an id
// are always applied. The caller holds a.mu.
func (a *DemandAggregator) markSeen(id string) bool {
	if id == "" {
		return true
	}
	if _, dup := a.seen[id]; dup {
		return false
	}
	if len(a.seenOrder) >= seenLimit {
		delete(a.seen, a.seenOrder[0])
		a.seenOrder = a.seenOrder[1:]
	}
	a.seen[id] = struct{}{}
	a.seenOrder = append(a.seenOrder, id)
	return true
}

func (a *DemandAggregator) publish(u models.DemandaProducto) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal demand of producto %d: %w", u.IDProducto, err)
	}
	key := strconv.FormatUint(uint64(u.IDProducto), 10)
	if err := a.producer.PushMessage(a.outputTopic, key, payload); err != nil {
		return fmt.Errorf("failed to publish demand of producto %d: %w", u.IDProducto, err)
	}
	return nil
}

// restore loads one record of the compacted topic. An empty value is a
// tombstone and removes the product.
func (a *DemandAggregator) restore(key, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(value) == 0 {
		id, err := strconv.ParseUint(string(key), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid tombstone key %q: %w", key, err)
		}
		delete(a.counts, uint(id))
		return nil
	}

	var d models.DemandaProducto
	if err := json.Unmarshal(value, &d); err != nil {
		return fmt.Errorf("failed to unmarshal demand record: %w", err)
	}
	a.counts[d.IDProducto] = d.Cantidad
	return nil
}

// Top returns the n most demanded products, by line count descending and
// then product id ascending. n <= 0 returns every product.
func (a *DemandAggregator) Top(n int) []models.ProductoMasPedido {
	a.mu.Lock()
	out := make([]models.ProductoMasPedido, 0, len(a.counts))
	for id, c := range a.counts {
		out = append(out, models.ProductoMasPedido{IDProducto: id, Cantidad: c})
	}
	a.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Cantidad != out[j].Cantidad {
			return out[i].Cantidad > out[j].Cantidad
		}
		return out[i].IDProducto < out[j].IDProducto
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of products tracked.
func (a *DemandAggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.counts)
}
