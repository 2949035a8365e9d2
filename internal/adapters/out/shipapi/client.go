package shipapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client implements ports.OrderGateway against the remote order service over
// HTTP+JSON. It owns the full boundary: request construction, payload
// normalization, and translation of transport and upstream failures into the
// errs taxonomy. No business-rule validation happens here.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an order service client for the given base URL.
// A nil httpClient gets a default one with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}, nil
}

// FetchNew retrieves all unclaimed orders.
func (c *Client) FetchNew(ctx context.Context) ([]*order.Order, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/shipper", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.translateStatus(resp, "orders", "new")
	}

	var dtos []orderDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, errs.NewServerFailureErrorWithCause(resp.StatusCode, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, nil)
		if err != nil {
			return nil, errs.NewServerFailureErrorWithCause(resp.StatusCode, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// FetchAssigned retrieves every order owned by the shipper, split into the
// mine/done/cancelled partitions in one round trip.
func (c *Client) FetchAssigned(ctx context.Context, shipperID kernel.ID) (ports.AssignedOrders, error) {
	if err := shipperID.Validate(); err != nil {
		return ports.AssignedOrders{}, err
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/shipper_status/"+shipperID.String(), nil)
	if err != nil {
		return ports.AssignedOrders{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.AssignedOrders{}, c.translateStatus(resp, "shipper", shipperID.String())
	}

	var dto assignedOrdersDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return ports.AssignedOrders{}, errs.NewServerFailureErrorWithCause(resp.StatusCode, err)
	}

	mine, err := c.mapWrapped(dto.Processing, shipperID, resp.StatusCode)
	if err != nil {
		return ports.AssignedOrders{}, err
	}
	done, err := c.mapWrapped(dto.Delivered, shipperID, resp.StatusCode)
	if err != nil {
		return ports.AssignedOrders{}, err
	}
	cancelled, err := c.mapWrapped(dto.Cancelled, shipperID, resp.StatusCode)
	if err != nil {
		return ports.AssignedOrders{}, err
	}

	return ports.AssignedOrders{Mine: mine, Done: done, Cancelled: cancelled}, nil
}

// FetchMine retrieves the shipper's in-progress orders.
func (c *Client) FetchMine(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error) {
	assigned, err := c.FetchAssigned(ctx, shipperID)
	if err != nil {
		return nil, err
	}
	return assigned.Mine, nil
}

// FetchDone retrieves the shipper's delivered orders.
func (c *Client) FetchDone(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error) {
	assigned, err := c.FetchAssigned(ctx, shipperID)
	if err != nil {
		return nil, err
	}
	return assigned.Done, nil
}

// FetchCancelled retrieves the shipper's cancelled orders.
func (c *Client) FetchCancelled(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error) {
	assigned, err := c.FetchAssigned(ctx, shipperID)
	if err != nil {
		return nil, err
	}
	return assigned.Cancelled, nil
}

// FetchDetail retrieves one order by ID. The detail payload carries no
// assignee, so the restored order is unassigned; callers overlay the local
// assignment when they have one.
func (c *Client) FetchDetail(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID.String(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.translateStatus(resp, "order", orderID.String())
	}

	var dto orderDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errs.NewServerFailureErrorWithCause(resp.StatusCode, err)
	}

	o, err := toDomain(dto, nil)
	if err != nil {
		return nil, errs.NewServerFailureErrorWithCause(resp.StatusCode, err)
	}
	return o, nil
}

// Claim asks the service to assign the order to the shipper.
func (c *Client) Claim(ctx context.Context, orderID, shipperID kernel.ID) error {
	return c.patch(ctx, "/api/shipper_accept",
		claimBodyDTO{ID: shipperID.String(), OrderID: orderID.String()}, orderID, shipperID)
}

// Complete reports the order as delivered.
func (c *Client) Complete(ctx context.Context, orderID, shipperID kernel.ID) error {
	return c.patch(ctx, "/api/shipper_complete",
		settleBodyDTO{ID: shipperID.String(), OrderID: orderID.String()}, orderID, shipperID)
}

// Cancel reports the order as rejected or failed.
func (c *Client) Cancel(ctx context.Context, orderID, shipperID kernel.ID) error {
	return c.patch(ctx, "/api/shipper_cancel",
		settleBodyDTO{ID: shipperID.String(), OrderID: orderID.String()}, orderID, shipperID)
}

func (c *Client) patch(ctx context.Context, path string, body any, orderID, shipperID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.translateStatus(resp, "order", orderID.String())
	}
	return nil
}

func (c *Client) mapWrapped(dtos []wrappedOrderDTO, shipperID kernel.ID, statusCode int) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomainWrapped(dto, shipperID)
		if err != nil {
			return nil, errs.NewServerFailureErrorWithCause(statusCode, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// do builds and executes one request. Every request carries a generated
// request ID so upstream logs can be correlated with client activity.
// Transport failures map to NetworkUnavailable; the outcome of the attempted
// operation is unknown when one occurs.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewNetworkUnavailableError(err)
	}
	return resp, nil
}

// translateStatus maps a non-200 response to the errs taxonomy. The service
// wraps rejection reasons in a {message} envelope; when present, the message
// is carried through for display.
func (c *Client) translateStatus(resp *http.Response, paramName, id string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope messageDTO
	_ = json.Unmarshal(raw, &envelope)
	message := envelope.Message
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		if message != "" {
			return errs.NewObjectNotFoundErrorWithCause(paramName, id, fmt.Errorf("%s", message))
		}
		return errs.NewObjectNotFoundError(paramName, id)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if message == "" {
			message = "session is no longer valid"
		}
		return errs.NewUnauthorizedError(message)
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusBadRequest:
		if message == "" {
			message = "operation rejected"
		}
		return errs.NewConflictError(message)
	default:
		if message != "" {
			return errs.NewServerFailureErrorWithCause(resp.StatusCode, fmt.Errorf("%s", message))
		}
		return errs.NewServerFailureError(resp.StatusCode)
	}
}
