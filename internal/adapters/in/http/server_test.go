package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipper/internal/adapters/out/memboard"
	"shipper/internal/adapters/out/sessionfile"
	"shipper/internal/core/application/usecases/commands"
	"shipper/internal/core/application/usecases/queries"
	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/domain/model/shipper"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

// fakeGateway is a programmable stand-in for the remote order service.
type fakeGateway struct {
	newOrders []*order.Order
	assigned  ports.AssignedOrders
	detail    *order.Order

	fetchErr  error
	detailErr error
	claimErr  error
	settleErr error
}

func (g *fakeGateway) FetchNew(context.Context) ([]*order.Order, error) {
	return g.newOrders, g.fetchErr
}

func (g *fakeGateway) FetchAssigned(context.Context, kernel.ID) (ports.AssignedOrders, error) {
	return g.assigned, g.fetchErr
}

func (g *fakeGateway) FetchDetail(context.Context, kernel.ID) (*order.Order, error) {
	return g.detail, g.detailErr
}

func (g *fakeGateway) Claim(context.Context, kernel.ID, kernel.ID) error {
	return g.claimErr
}

func (g *fakeGateway) Complete(context.Context, kernel.ID, kernel.ID) error {
	return g.settleErr
}

func (g *fakeGateway) Cancel(context.Context, kernel.ID, kernel.ID) error {
	return g.settleErr
}

type testEnv struct {
	echo     *echo.Echo
	board    *memboard.Board
	gateway  *fakeGateway
	sessions *sessionfile.Store
}

func newTestEnv(t *testing.T, authenticated bool) *testEnv {
	t.Helper()

	board := memboard.NewBoard()
	gateway := &fakeGateway{}

	sessions, err := sessionfile.NewStore(filepath.Join(t.TempDir(), "shipper.json"))
	require.NoError(t, err)
	if authenticated {
		id, idErr := kernel.NewID("s1")
		require.NoError(t, idErr)
		sh, shErr := shipper.RestoreShipper(id, "a@b.vn", "Nguyen Van A", "0901", "", true)
		require.NoError(t, shErr)
		require.NoError(t, sessions.Save(context.Background(), sh))
	}

	server := NewServer(
		commands.NewClaimOrderCommandHandler(board, gateway),
		commands.NewCompleteOrderCommandHandler(board, gateway),
		commands.NewCancelOrderCommandHandler(board, gateway),
		commands.NewRefreshBoardCommandHandler(board, gateway),
		commands.NewLogoutCommandHandler(sessions),
		queries.NewListOrdersQueryHandler(board),
		queries.NewGetOrderDetailQueryHandler(board, gateway),
		queries.NewGetOrderStatsQueryHandler(board),
		queries.NewGetProfileQueryHandler(sessions),
		sessions,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &testEnv{echo: e, board: board, gateway: gateway, sessions: sessions}
}

func (env *testEnv) request(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func testOrder(t *testing.T, idValue string, status order.Status, shipperID *kernel.ID) *order.Order {
	t.Helper()
	id, err := kernel.NewID(idValue)
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentCashOnDelivery, 15000, 215000)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id,
		"DH-"+idValue,
		order.NewRecipient("Nguyen Van A", "12 Le Loi", "0901"),
		payment,
		nil,
		order.Timestamps{OrderDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		status,
		shipperID,
	)
	require.NoError(t, err)
	return o
}

func TestServer_HealthNeedsNoSession(t *testing.T) {
	env := newTestEnv(t, false)
	rec := env.request(http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnauthenticatedRequestsAre401(t *testing.T) {
	env := newTestEnv(t, false)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/dashboard"},
		{http.MethodGet, "/orders?partition=new"},
		{http.MethodGet, "/orders/o1"},
		{http.MethodPost, "/orders/o1/claim"},
		{http.MethodPost, "/refresh"},
	} {
		rec := env.request(target.method, target.path)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target.path)
	}
}

func TestServer_RefreshListClaimFlow(t *testing.T) {
	env := newTestEnv(t, true)
	env.gateway.newOrders = []*order.Order{testOrder(t, "o1", order.New, nil)}

	rec := env.request(http.MethodPost, "/refresh")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(http.MethodGet, "/orders?partition=new")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []OrderRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "o1", rows[0].ID)
	assert.Equal(t, "New", rows[0].Status)

	rec = env.request(http.MethodPost, "/orders/o1/claim")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// the claim moved the order to the shipper's in-progress partition
	rec = env.request(http.MethodGet, "/orders?partition=mine")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Claimed", rows[0].Status)

	rec = env.request(http.MethodGet, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, "Nguyen Van A", dashboard.Shipper.FullName)
	assert.Equal(t, 1, dashboard.Stats.ClaimedOrders)
	assert.Equal(t, 0, dashboard.Stats.NewOrders)
}

func TestServer_ClaimConflictRevertsTheBoard(t *testing.T) {
	env := newTestEnv(t, true)
	env.gateway.newOrders = []*order.Order{testOrder(t, "o1", order.New, nil)}
	env.gateway.claimErr = errs.NewConflictError("order already taken")

	require.Equal(t, http.StatusNoContent, env.request(http.MethodPost, "/refresh").Code)

	rec := env.request(http.MethodPost, "/orders/o1/claim")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// the optimistic claim was rolled back
	rec = env.request(http.MethodGet, "/orders?partition=new")
	var rows []OrderRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "New", rows[0].Status)
}

func TestServer_GetOrderDetail(t *testing.T) {
	env := newTestEnv(t, true)
	env.gateway.detail = testOrder(t, "o1", order.New, nil)

	rec := env.request(http.MethodGet, "/orders/o1")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "o1", detail.ID)
	assert.Equal(t, []string{"claim", "cancel"}, detail.AllowedActions)
}

func TestServer_UnknownOrderIs404(t *testing.T) {
	env := newTestEnv(t, true)
	env.gateway.detailErr = errs.NewObjectNotFoundError("order", "missing")

	rec := env.request(http.MethodGet, "/orders/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UnknownPartitionIs400(t *testing.T) {
	env := newTestEnv(t, true)
	rec := env.request(http.MethodGet, "/orders?partition=archive")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RejectedSessionIsCleared(t *testing.T) {
	env := newTestEnv(t, true)
	env.gateway.newOrders = []*order.Order{testOrder(t, "o1", order.New, nil)}
	require.Equal(t, http.StatusNoContent, env.request(http.MethodPost, "/refresh").Code)

	env.gateway.claimErr = errs.NewUnauthorizedError("token expired")
	rec := env.request(http.MethodPost, "/orders/o1/claim")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the stored session is gone; the next request must re-authenticate
	rec = env.request(http.MethodGet, "/dashboard")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Logout(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.request(http.MethodPost, "/logout")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(http.MethodGet, "/dashboard")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
