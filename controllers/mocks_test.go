package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/controllers"
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCrudService is a testify mock of services.ICrudService.
type MockCrudService[T any] struct {
	mock.Mock
}

func (m *MockCrudService[T]) Listar(ctx context.Context) ([]T, error) {
	args := m.MethodCalled("Listar", ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCrudService[T]) Insertar(ctx context.Context, v *T) error {
	return m.MethodCalled("Insertar", ctx, v).Error(0)
}

func (m *MockCrudService[T]) Modificar(ctx context.Context, id uint, v *T) (*T, error) {
	args := m.MethodCalled("Modificar", ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCrudService[T]) Eliminar(ctx context.Context, id uint) error {
	return m.MethodCalled("Eliminar", ctx, id).Error(0)
}

func (m *MockCrudService[T]) ObtenerPorID(ctx context.Context, id uint) (*T, error) {
	args := m.MethodCalled("ObtenerPorID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// MockClienteService is a mock of services.IClienteService.
type MockClienteService struct {
	MockCrudService[models.Cliente]
}

func (m *MockClienteService) EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error) {
	args := m.MethodCalled("EliminarCascada", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EliminacionCascada), args.Error(1)
}

// MockPedidoService is a mock of services.IPedidoService.
type MockPedidoService struct {
	MockCrudService[models.Pedido]
}

func (m *MockPedidoService) Registrar(ctx context.Context, pedido *models.Pedido) (*models.Pedido, error) {
	args := m.MethodCalled("Registrar", ctx, pedido)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pedido), args.Error(1)
}

// MockReporteService is a mock of services.IReporteService.
type MockReporteService struct {
	mock.Mock
}

func (m *MockReporteService) ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReportePedidoCliente), args.Error(1)
}

func (m *MockReporteService) Top3Productos(ctx context.Context) ([]models.ProductoMasPedido, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductoMasPedido), args.Error(1)
}

func (m *MockReporteService) TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error) {
	args := m.Called(ctx, inicio, fin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductoMasPedido), args.Error(1)
}

type testApp struct {
	app       *fiber.App
	clientes  *MockClienteService
	productos *MockCrudService[models.Producto]
	pedidos   *MockPedidoService
	detalles  *MockCrudService[models.Detalle]
	reportes  *MockReporteService
	pingErr   error
}

func newTestApp() *testApp {
	ta := &testApp{
		app:       fiber.New(),
		clientes:  new(MockClienteService),
		productos: new(MockCrudService[models.Producto]),
		pedidos:   new(MockPedidoService),
		detalles:  new(MockCrudService[models.Detalle]),
		reportes:  new(MockReporteService),
	}
	controllers.RegisterRoutes(ta.app, controllers.Services{
		Clientes:  ta.clientes,
		Productos: ta.productos,
		Pedidos:   ta.pedidos,
		Detalles:  ta.detalles,
		Reportes:  ta.reportes,
		Ping:      func(context.Context) error { return ta.pingErr },
	})
	return ta
}

func (ta *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	if req.Body != nil && req.Body != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req, int((10 * time.Second).Milliseconds()))
	require.NoError(t, err)
	return resp
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body io.Reader) errorBody {
	t.Helper()
	var out errorBody
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
