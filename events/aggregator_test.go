package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const demandTopic = "productos-demanda"

type mockProducer struct {
	mock.Mock
}

func (m *mockProducer) PushMessage(topic, key string, message []byte) error {
	return m.Called(topic, key, message).Error(0)
}

func pedidoRegistrado(id uint, productos ...uint) models.Evento {
	pedido := &models.Pedido{ID: id, IDCliente: 1}
	for _, p := range productos {
		pedido.Detalles = append(pedido.Detalles, models.Detalle{IDProducto: p})
	}
	return models.Evento{ID: fmt.Sprintf("evt-%d", id), Tipo: models.EventoPedidoRegistrado, Pedido: pedido}
}

func demanda(t *testing.T, id uint, cantidad int64) []byte {
	t.Helper()
	b, err := json.Marshal(models.DemandaProducto{IDProducto: id, Cantidad: cantidad})
	require.NoError(t, err)
	return b
}

func TestDemandAggregator_ProcessEvento(t *testing.T) {
	producer := new(mockProducer)
	agg := NewDemandAggregator(demandTopic, producer)

	producer.On("PushMessage", demandTopic, "7", demanda(t, 7, 2)).Return(nil).Once()
	producer.On("PushMessage", demandTopic, "3", demanda(t, 3, 1)).Return(nil).Once()

	require.NoError(t, agg.ProcessEvento(pedidoRegistrado(1, 7, 3, 7)))

	producer.On("PushMessage", demandTopic, "3", demanda(t, 3, 2)).Return(nil).Once()
	require.NoError(t, agg.ProcessEvento(pedidoRegistrado(2, 3)))

	assert.Equal(t, []models.ProductoMasPedido{
		{IDProducto: 3, Cantidad: 2},
		{IDProducto: 7, Cantidad: 2},
	}, agg.Top(0))
	producer.AssertExpectations(t)
}

func TestDemandAggregator_SkipsRedeliveredEvent(t *testing.T) {
	producer := new(mockProducer)
	agg := NewDemandAggregator(demandTopic, producer)

	producer.On("PushMessage", demandTopic, "5", demanda(t, 5, 2)).Return(nil).Once()

	evento := pedidoRegistrado(1, 5, 5)
	require.NoError(t, agg.ProcessEvento(evento))
	require.NoError(t, agg.ProcessEvento(evento))

	assert.Equal(t, []models.ProductoMasPedido{{IDProducto: 5, Cantidad: 2}}, agg.Top(0))
	producer.AssertExpectations(t)
}

func TestDemandAggregator_SeenIDsAreBounded(t *testing.T) {
	producer := new(mockProducer)
	producer.On("PushMessage", demandTopic, "1", mock.Anything).Return(nil)
	agg := NewDemandAggregator(demandTopic, producer)

	for i := 0; i < seenLimit+1; i++ {
		require.NoError(t, agg.ProcessEvento(pedidoRegistrado(uint(i), 1)))
	}

	assert.Len(t, agg.seen, seenLimit)
	assert.Len(t, agg.seenOrder, seenLimit)
	// The oldest id was evicted and is applied again.
	require.NoError(t, agg.ProcessEvento(pedidoRegistrado(0, 1)))
	assert.EqualValues(t, seenLimit+2, agg.Top(1)[0].Cantidad)
}

func TestDemandAggregator_IgnoresOtherEvents(t *testing.T) {
	producer := new(mockProducer)
	agg := NewDemandAggregator(demandTopic, producer)

	id := uint(4)
	require.NoError(t, agg.ProcessEvento(models.Evento{Tipo: models.EventoClienteEliminado, IDCliente: &id}))
	require.NoError(t, agg.ProcessEvento(models.Evento{Tipo: models.EventoPedidoRegistrado}))

	assert.Zero(t, agg.Len())
	producer.AssertNotCalled(t, "PushMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestDemandAggregator_PublishFailureKeepsState(t *testing.T) {
	producer := new(mockProducer)
	agg := NewDemandAggregator(demandTopic, producer)

	producer.On("PushMessage", demandTopic, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := agg.ProcessEvento(pedidoRegistrado(1, 5, 6))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "producto 5")
	assert.Contains(t, err.Error(), "producto 6")
	assert.Equal(t, 2, agg.Len())
}

func TestDemandAggregator_Top(t *testing.T) {
	agg := NewDemandAggregator(demandTopic, nil)
	for id, c := range map[uint]int64{1: 2, 2: 5, 3: 2, 4: 1, 5: 5} {
		require.NoError(t, agg.restore(nil, demanda(t, id, c)))
	}

	assert.Equal(t, []models.ProductoMasPedido{
		{IDProducto: 2, Cantidad: 5},
		{IDProducto: 5, Cantidad: 5},
		{IDProducto: 1, Cantidad: 2},
	}, agg.Top(3))
	assert.Len(t, agg.Top(10), 5)
	assert.Empty(t, NewDemandAggregator(demandTopic, nil).Top(3))
}

func TestDemandAggregator_RestoreTombstone(t *testing.T) {
	agg := NewDemandAggregator(demandTopic, nil)
	require.NoError(t, agg.restore([]byte("9"), demanda(t, 9, 3)))
	require.NoError(t, agg.restore([]byte("9"), nil))
	assert.Zero(t, agg.Len())

	assert.Error(t, agg.restore([]byte("nine"), nil))
	assert.Error(t, agg.restore([]byte("9"), []byte("{")))
}

type fakeOffsets struct {
	oldest, newest int64
}

func (f fakeOffsets) GetOffset(_ string, _ int32, t int64) (int64, error) {
	if t == sarama.OffsetOldest {
		return f.oldest, nil
	}
	return f.newest, nil
}

func TestDemandAggregator_RecoverState(t *testing.T) {
	consumer := mocks.NewConsumer(t, sarama.NewConfig())
	consumer.SetTopicMetadata(map[string][]int32{demandTopic: {0}})
	pc := consumer.ExpectConsumePartition(demandTopic, 0, sarama.OffsetOldest)
	pc.YieldMessage(&sarama.ConsumerMessage{Key: []byte("1"), Value: demanda(t, 1, 4)})
	pc.YieldMessage(&sarama.ConsumerMessage{Key: []byte("2"), Value: demanda(t, 2, 1)})
	pc.YieldMessage(&sarama.ConsumerMessage{Key: []byte("2"), Value: nil})

	agg := NewDemandAggregator(demandTopic, nil)
	err := agg.RecoverState(context.Background(), consumer, fakeOffsets{oldest: 0, newest: 3}, 200*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []models.ProductoMasPedido{{IDProducto: 1, Cantidad: 4}}, agg.Top(0))
}

func TestDemandAggregator_RecoverState_EmptyTopic(t *testing.T) {
	consumer := mocks.NewConsumer(t, sarama.NewConfig())
	consumer.SetTopicMetadata(map[string][]int32{demandTopic: {0, 1}})

	agg := NewDemandAggregator(demandTopic, nil)
	err := agg.RecoverState(context.Background(), consumer, fakeOffsets{oldest: 5, newest: 5}, time.Second)

	require.NoError(t, err)
	assert.Zero(t, agg.Len())
}

func TestDecodeEvento_Strict(t *testing.T) {
	evento, err := decodeEvento([]byte(`{"id":"a","tipo":"pedido.registrado","ocurrido":"2024-05-01T10:00:00Z","pedido":{"idPedido":3,"fecha":"2024-05-01T10:00:00Z","total":null,"estado":null,"idCliente":1,"detalles":[{"id":1,"cantidad":1,"precio":2,"subTotal":2,"idPedido":3,"idProducto":8}]}}`))
	require.NoError(t, err)
	assert.Equal(t, uint(8), evento.Pedido.Detalles[0].IDProducto)

	_, err = decodeEvento([]byte(`{"id":"a","tipo":"pedido.registrado","extra":true}`))
	assert.Error(t, err)
}
