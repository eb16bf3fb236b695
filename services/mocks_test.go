package services_test

import (
	"context"
	"time"

	"github.com/roberto426/Examen2-7234547/models"
	"github.com/stretchr/testify/mock"
)

// MockCRUD is a testify mock of repository.CRUD.
type MockCRUD[T any] struct {
	mock.Mock
}

func (m *MockCRUD[T]) Insert(ctx context.Context, v *T) error {
	return m.MethodCalled("Insert", ctx, v).Error(0)
}

func (m *MockCRUD[T]) Update(ctx context.Context, id uint, v *T) (*T, error) {
	args := m.MethodCalled("Update", ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) Delete(ctx context.Context, id uint) error {
	return m.MethodCalled("Delete", ctx, id).Error(0)
}

func (m *MockCRUD[T]) List(ctx context.Context) ([]T, error) {
	args := m.MethodCalled("List", ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUD[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	args := m.MethodCalled("GetByID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// MockClienteRepository is a mock of repository.IClienteRepository.
type MockClienteRepository struct {
	MockCRUD[models.Cliente]
}

func (m *MockClienteRepository) EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error) {
	args := m.MethodCalled("EliminarCascada", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EliminacionCascada), args.Error(1)
}

// MockPedidoRepository is a mock of repository.IPedidoRepository.
type MockPedidoRepository struct {
	MockCRUD[models.Pedido]
}

func (m *MockPedidoRepository) Registrar(ctx context.Context, pedido *models.Pedido) error {
	return m.MethodCalled("Registrar", ctx, pedido).Error(0)
}

// MockReporteRepository is a mock of repository.IReporteRepository.
type MockReporteRepository struct {
	mock.Mock
}

func (m *MockReporteRepository) ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ReportePedidoCliente), args.Error(1)
}

func (m *MockReporteRepository) TopProductos(ctx context.Context, limit int) ([]models.ProductoMasPedido, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.ProductoMasPedido), args.Error(1)
}

func (m *MockReporteRepository) TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error) {
	args := m.Called(ctx, inicio, fin)
	return args.Get(0).([]models.ProductoMasPedido), args.Error(1)
}

// MockEventPublisher is a mock of services.IEventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PedidoRegistrado(ctx context.Context, pedido *models.Pedido) error {
	return m.Called(ctx, pedido).Error(0)
}

func (m *MockEventPublisher) ClienteEliminado(ctx context.Context, idCliente uint) error {
	return m.Called(ctx, idCliente).Error(0)
}

// MockKafkaService is a mock of services.IKafkaService.
type MockKafkaService struct {
	mock.Mock
}

func (m *MockKafkaService) PushMessage(topic, key string, message []byte) error {
	return m.Called(topic, key, message).Error(0)
}

func (m *MockKafkaService) Close() error {
	return m.Called().Error(0)
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
