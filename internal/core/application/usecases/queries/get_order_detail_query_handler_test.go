package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipper/internal/adapters/out/memboard"
	"shipper/internal/core/application/usecases/queries"
	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/domain/services"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

type MockDetailGateway struct{ mock.Mock }

func (m *MockDetailGateway) FetchDetail(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func restoreOrderWithProducts(t *testing.T, idValue string, status order.Status, shipperID *kernel.ID) *order.Order {
	t.Helper()
	payment, err := order.NewPayment(order.PaymentOnline, 15000, 215000)
	require.NoError(t, err)

	product, err := order.NewProduct(mustID(t, "p1"), "Tea", 100000, 2, 200000)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		mustID(t, idValue),
		"DH-"+idValue,
		order.NewRecipient("Nguyen Van A", "12 Le Loi", "0901"),
		payment,
		[]order.Product{product},
		order.Timestamps{OrderDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		status,
		shipperID,
	)
	require.NoError(t, err)
	return o
}

func TestGetOrderDetailQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	shipperID := mustID(t, "s1")
	orderID := mustID(t, "o1")

	t.Run("unclaimed order offers claim and cancel", func(t *testing.T) {
		gateway := new(MockDetailGateway)
		gateway.On("FetchDetail", ctx, orderID).
			Return(restoreOrderWithProducts(t, "o1", order.New, nil), nil).Once()

		handler := queries.NewGetOrderDetailQueryHandler(memboard.NewBoard(), gateway)
		query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
		require.NoError(t, err)

		detail, err := handler.Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, "o1", detail.ID)
		assert.Equal(t, "New", detail.Status)
		assert.False(t, detail.AssignedToMe)
		require.Len(t, detail.Products, 1)
		assert.Equal(t, "Tea", detail.Products[0].Name)
		assert.Equal(t, int64(200000), detail.Products[0].LinePrice)
		assert.Equal(t,
			[]services.Action{services.ActionClaim, services.ActionCancel},
			detail.AllowedActions)
	})

	t.Run("board assignment overlays the bare detail payload", func(t *testing.T) {
		// the detail payload never names an assignee; the board does
		board := memboard.NewBoard()
		require.NoError(t, board.Replace(ports.PartitionMine,
			[]*order.Order{restoreOrderWithProducts(t, "o1", order.Claimed, &shipperID)}))

		gateway := new(MockDetailGateway)
		gateway.On("FetchDetail", ctx, orderID).
			Return(restoreOrderWithProducts(t, "o1", order.Claimed, nil), nil).Once()

		handler := queries.NewGetOrderDetailQueryHandler(board, gateway)
		query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
		require.NoError(t, err)

		detail, err := handler.Handle(ctx, query)
		require.NoError(t, err)

		assert.True(t, detail.AssignedToMe)
		assert.Equal(t,
			[]services.Action{services.ActionComplete, services.ActionCancel},
			detail.AllowedActions)
	})

	t.Run("someone else's claimed order offers nothing", func(t *testing.T) {
		other := mustID(t, "s2")
		gateway := new(MockDetailGateway)
		gateway.On("FetchDetail", ctx, orderID).
			Return(restoreOrderWithProducts(t, "o1", order.Claimed, &other), nil).Once()

		handler := queries.NewGetOrderDetailQueryHandler(memboard.NewBoard(), gateway)
		query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
		require.NoError(t, err)

		detail, err := handler.Handle(ctx, query)
		require.NoError(t, err)

		assert.False(t, detail.AssignedToMe)
		assert.Empty(t, detail.AllowedActions)
	})

	t.Run("terminal order offers nothing", func(t *testing.T) {
		gateway := new(MockDetailGateway)
		gateway.On("FetchDetail", ctx, orderID).
			Return(restoreOrderWithProducts(t, "o1", order.Completed, &shipperID), nil).Once()

		handler := queries.NewGetOrderDetailQueryHandler(memboard.NewBoard(), gateway)
		query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
		require.NoError(t, err)

		detail, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, detail.AllowedActions)
	})

	t.Run("unknown order propagates not found", func(t *testing.T) {
		gateway := new(MockDetailGateway)
		gateway.On("FetchDetail", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", "o1")).Once()

		handler := queries.NewGetOrderDetailQueryHandler(memboard.NewBoard(), gateway)
		query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
