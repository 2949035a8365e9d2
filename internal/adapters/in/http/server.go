// Package http exposes the client's view-model as a JSON API for the UI
// shell: the dashboard, the four order partitions, order detail, and the
// lifecycle actions. Every endpoint except the health check is gated on a
// loaded session.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shipper/internal/core/application/usecases/commands"
	"shipper/internal/core/application/usecases/queries"
	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	claimOrderHandler    commands.ClaimOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	refreshBoardHandler  commands.RefreshBoardCommandHandler
	logoutHandler        commands.LogoutCommandHandler

	// Query handlers
	listOrdersHandler     queries.ListOrdersQueryHandler
	getOrderDetailHandler queries.GetOrderDetailQueryHandler
	getOrderStatsHandler  queries.GetOrderStatsQueryHandler
	getProfileHandler     queries.GetProfileQueryHandler

	sessions ports.SessionStore
}

// NewServer creates an HTTP server with the required command and query
// handlers. The session store gates every request except the health check.
func NewServer(
	claimOrderHandler commands.ClaimOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refreshBoardHandler commands.RefreshBoardCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	sessions ports.SessionStore,
) *Server {
	return &Server{
		claimOrderHandler:     claimOrderHandler,
		completeOrderHandler:  completeOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		refreshBoardHandler:   refreshBoardHandler,
		logoutHandler:         logoutHandler,
		listOrdersHandler:     listOrdersHandler,
		getOrderDetailHandler: getOrderDetailHandler,
		getOrderStatsHandler:  getOrderStatsHandler,
		getProfileHandler:     getProfileHandler,
		sessions:              sessions,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/dashboard", s.GetDashboard)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrderDetail)
	e.POST("/orders/:id/claim", s.ClaimOrder)
	e.POST("/orders/:id/complete", s.CompleteOrder)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.POST("/refresh", s.RefreshBoard)
	e.POST("/logout", s.Logout)
}

// GetHealth handles GET /health - liveness probe, no session required.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetDashboard handles GET /dashboard - the home screen payload.
func (s *Server) GetDashboard(ctx echo.Context) error {
	if _, err := s.currentShipper(ctx); err != nil {
		return err
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), queries.NewGetProfileQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Dashboard{
		Shipper: toProfile(profile),
		Stats:   toStats(stats),
	})
}

// GetOrders handles GET /orders?partition= - one board partition.
func (s *Server) GetOrders(ctx echo.Context) error {
	if _, err := s.currentShipper(ctx); err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(ports.Partition(ctx.QueryParam("partition")))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "unknown partition: " + ctx.QueryParam("partition"),
		})
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderRow, 0, len(rows))
	for _, row := range rows {
		response = append(response, toOrderRow(row))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetail handles GET /orders/:id - the full order projection.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	shipperID, err := s.currentShipper(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID, shipperID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// ClaimOrder handles POST /orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	return s.handleLifecycleAction(ctx, func(orderID, shipperID kernel.ID) error {
		cmd, err := commands.NewClaimOrderCommand(orderID, shipperID)
		if err != nil {
			return err
		}
		return s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.handleLifecycleAction(ctx, func(orderID, shipperID kernel.ID) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID, shipperID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleLifecycleAction(ctx, func(orderID, shipperID kernel.ID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, shipperID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RefreshBoard handles POST /refresh - the pull-to-refresh analog.
func (s *Server) RefreshBoard(ctx echo.Context) error {
	shipperID, err := s.currentShipper(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRefreshBoardCommand(shipperID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.refreshBoardHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Logout handles POST /logout - discards the session.
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.logoutHandler.Handle(ctx.Request().Context(), commands.NewLogoutCommand()); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleLifecycleAction(ctx echo.Context, action func(orderID, shipperID kernel.ID) error) error {
	shipperID, err := s.currentShipper(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := action(orderID, shipperID); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// currentShipper loads the session and returns the authenticated shipper's
// ID. A missing session answers 401; the UI treats that as a redirect to
// login.
func (s *Server) currentShipper(ctx echo.Context) (kernel.ID, error) {
	sh, err := s.sessions.Load(ctx.Request().Context())
	if err != nil {
		return kernel.ID{}, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "not authenticated",
		})
	}
	return sh.ID(), nil
}

// writeError maps an application error onto the HTTP surface. A rejected
// session from the remote service clears the stored one, forcing the next
// request back through login.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		_ = s.sessions.Clear(ctx.Request().Context())
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict), errors.Is(err, ports.ErrOrderBusy):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNetworkUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrServerFailure):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
