package cmd

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"shipper/internal/adapters/in/http"
	"shipper/internal/adapters/out/memboard"
	"shipper/internal/adapters/out/sessionfile"
	"shipper/internal/adapters/out/shipapi"
	"shipper/internal/core/application/usecases/commands"
	"shipper/internal/core/application/usecases/queries"
	"shipper/internal/jobs"
)

// CompositionRoot wires the adapters and use cases together. The board,
// gateway, and session store are shared singletons; handlers are cheap
// values created on demand.
type CompositionRoot struct {
	board    *memboard.Board
	gateway  *shipapi.Client
	sessions *sessionfile.Store
	config   Config
	logger   *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	gateway, err := shipapi.NewClient(config.OrderServiceURL, &nethttp.Client{
		Timeout: config.HTTPClientTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order service client: %w", err)
	}

	sessions, err := sessionfile.NewStore(config.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	return &CompositionRoot{
		board:    memboard.NewBoard(),
		gateway:  gateway,
		sessions: sessions,
		config:   config,
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.board, c.gateway)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.board, c.gateway)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.board, c.gateway)
}

func (c *CompositionRoot) CreateRefreshBoardCommandHandler() commands.RefreshBoardCommandHandler {
	return commands.NewRefreshBoardCommandHandler(c.board, c.gateway)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.board)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.board, c.gateway)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.board)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.sessions)
}

// CreateServer assembles the inbound HTTP server.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateClaimOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRefreshBoardCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderDetailQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		c.CreateGetProfileQueryHandler(),
		c.sessions,
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshBoardCommandHandler(),
		c.sessions,
		c.config.RefreshSchedule,
		c.logger,
	)
}
