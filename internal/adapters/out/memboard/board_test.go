package memboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

func mustID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func restoreOrder(t *testing.T, idValue string, status order.Status, shipperID *kernel.ID, orderDate time.Time) *order.Order {
	t.Helper()
	id := mustID(t, idValue)
	payment, err := order.NewPayment(order.PaymentCashOnDelivery, 15000, 215000)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id,
		"DH-"+idValue,
		order.NewRecipient("Nguyen Van A", "12 Le Loi", "0901"),
		payment,
		nil,
		order.Timestamps{OrderDate: orderDate},
		status,
		shipperID,
	)
	require.NoError(t, err)
	return o
}

func TestBoard_Replace(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
	}

	t.Run("fills a partition sorted by order date", func(t *testing.T) {
		board := NewBoard()

		older := restoreOrder(t, "o1", order.New, nil, day(1))
		newer := restoreOrder(t, "o2", order.New, nil, day(5))
		require.NoError(t, board.Replace(ports.PartitionNew, []*order.Order{older, newer}))

		listed := board.List(ports.PartitionNew)
		require.Len(t, listed, 2)
		assert.Equal(t, "o2", listed[0].ID().String())
		assert.Equal(t, "o1", listed[1].ID().String())

		sizes := board.Sizes()
		assert.Equal(t, 2, sizes[ports.PartitionNew])
		assert.Equal(t, 0, sizes[ports.PartitionMine])
	})

	t.Run("drops orders missing from the fresh fetch", func(t *testing.T) {
		board := NewBoard()

		gone := restoreOrder(t, "o1", order.New, nil, day(1))
		require.NoError(t, board.Replace(ports.PartitionNew, []*order.Order{gone}))
		require.NoError(t, board.Replace(ports.PartitionNew, nil))

		_, ok := board.Get(mustID(t, "o1"))
		assert.False(t, ok)
	})

	t.Run("moves an order between partitions without duplicating it", func(t *testing.T) {
		board := NewBoard()
		shipperID := mustID(t, "s1")

		require.NoError(t, board.Replace(ports.PartitionNew,
			[]*order.Order{restoreOrder(t, "o1", order.New, nil, day(1))}))
		require.NoError(t, board.Replace(ports.PartitionMine,
			[]*order.Order{restoreOrder(t, "o1", order.Claimed, &shipperID, day(1))}))

		p, ok := board.Partition(mustID(t, "o1"))
		require.True(t, ok)
		assert.Equal(t, ports.PartitionMine, p)
		assert.Empty(t, board.List(ports.PartitionNew))
	})

	t.Run("rejects an unknown partition", func(t *testing.T) {
		board := NewBoard()
		assert.Error(t, board.Replace(ports.Partition("archive"), nil))
	})
}

func TestBoard_Stage(t *testing.T) {
	orderDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	shipperID := mustID(t, "s1")

	newBoardWithOrder := func(t *testing.T) *Board {
		t.Helper()
		board := NewBoard()
		require.NoError(t, board.Replace(ports.PartitionNew,
			[]*order.Order{restoreOrder(t, "o1", order.New, nil, orderDate)}))
		return board
	}

	t.Run("applies the transition optimistically", func(t *testing.T) {
		board := newBoardWithOrder(t)

		staged, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		require.NoError(t, err)

		assert.Equal(t, order.Claimed, staged.Order().Status())
		assert.NotEqual(t, [16]byte{}, [16]byte(staged.Token()))

		// the optimistic state is already visible on the board
		o, ok := board.Get(mustID(t, "o1"))
		require.True(t, ok)
		assert.Equal(t, order.Claimed, o.Status())
	})

	t.Run("unknown order", func(t *testing.T) {
		board := newBoardWithOrder(t)

		_, err := board.Stage(mustID(t, "missing"), func(*order.Order) error { return nil })
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("one operation in flight per order", func(t *testing.T) {
		board := newBoardWithOrder(t)

		_, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		require.NoError(t, err)

		_, err = board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Cancel(shipperID)
		})
		assert.ErrorIs(t, err, ports.ErrOrderBusy)
	})

	t.Run("failed transition leaves the board untouched", func(t *testing.T) {
		board := newBoardWithOrder(t)

		_, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Complete(shipperID)
		})
		require.Error(t, err)

		o, _ := board.Get(mustID(t, "o1"))
		assert.Equal(t, order.New, o.Status())

		// the busy flag was not leaked
		_, err = board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		assert.NoError(t, err)
	})

	t.Run("commit keeps the state and moves the order", func(t *testing.T) {
		board := newBoardWithOrder(t)

		staged, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		require.NoError(t, err)
		require.NoError(t, staged.Commit(ports.PartitionMine))

		p, _ := board.Partition(mustID(t, "o1"))
		assert.Equal(t, ports.PartitionMine, p)
		o, _ := board.Get(mustID(t, "o1"))
		assert.Equal(t, order.Claimed, o.Status())
		assert.True(t, o.IsAssignedTo(shipperID))

		assert.Error(t, staged.Rollback(), "settling twice must fail")
	})

	t.Run("rollback restores the snapshot in place", func(t *testing.T) {
		board := newBoardWithOrder(t)

		staged, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		require.NoError(t, err)
		require.NoError(t, staged.Rollback())

		o, _ := board.Get(mustID(t, "o1"))
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.Shipper())
		p, _ := board.Partition(mustID(t, "o1"))
		assert.Equal(t, ports.PartitionNew, p)

		// the order is stageable again
		_, err = board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		assert.NoError(t, err)
	})

	t.Run("refresh preserves an order with an update in flight", func(t *testing.T) {
		board := newBoardWithOrder(t)

		staged, err := board.Stage(mustID(t, "o1"), func(o *order.Order) error {
			return o.Claim(shipperID)
		})
		require.NoError(t, err)

		// a stale fetch still lists o1 as unclaimed; it must not clobber
		// the optimistic claim
		stale := restoreOrder(t, "o1", order.New, nil, orderDate)
		fresh := restoreOrder(t, "o2", order.New, nil, orderDate)
		require.NoError(t, board.Replace(ports.PartitionNew, []*order.Order{stale, fresh}))

		o, ok := board.Get(mustID(t, "o1"))
		require.True(t, ok)
		assert.Equal(t, order.Claimed, o.Status())

		require.NoError(t, staged.Commit(ports.PartitionMine))
		p, _ := board.Partition(mustID(t, "o1"))
		assert.Equal(t, ports.PartitionMine, p)
		assert.Equal(t, 1, board.Sizes()[ports.PartitionNew])
	})
}
