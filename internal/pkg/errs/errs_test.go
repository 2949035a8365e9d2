package errs_test

import (
	"errors"
	"testing"

	"shipper/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "o1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "o1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: o1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row missing")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "o1", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "o1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: o1 (cause: row missing)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("shipperId")

		assert.Equal(t, "shipperId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: shipperId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("shipperId", cause)

		assert.Equal(t, "shipperId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: shipperId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order already claimed")

		assert.Equal(t, "order already claimed", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: order already claimed", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("409 from upstream")
		err := errs.NewConflictErrorWithCause("order already claimed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: order already claimed (cause: 409 from upstream)", err.Error())
	})

	t.Run("message with newlines is flattened", func(t *testing.T) {
		err := errs.NewConflictError("first\nsecond")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "first second")
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("session expired")

	assert.Equal(t, "session expired", err.Message)
	assert.Equal(t, "unauthorized: session expired", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestNetworkUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewNetworkUnavailableError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "network unavailable (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrNetworkUnavailable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewNetworkUnavailableError(nil)
		assert.Equal(t, "network unavailable", err.Error())
	})
}

func TestServerFailureError(t *testing.T) {
	t.Run("NewServerFailureError", func(t *testing.T) {
		err := errs.NewServerFailureError(502)

		assert.Equal(t, 502, err.StatusCode)
		assert.Equal(t, "server failure: status is: 502", err.Error())
		assert.Equal(t, errs.ErrServerFailure, err.Unwrap())
	})

	t.Run("NewServerFailureErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := errs.NewServerFailureErrorWithCause(500, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "server failure: status is: 500 (cause: unexpected EOF)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrNetworkUnavailable)
		require.Error(t, errs.ErrServerFailure)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "network unavailable", errs.ErrNetworkUnavailable.Error())
		assert.Equal(t, "server failure", errs.ErrServerFailure.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "o1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("shipperId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("claimed"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewUnauthorizedError("expired"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewNetworkUnavailableError(errors.New("down")), errs.ErrNetworkUnavailable)
		require.ErrorIs(t, errs.NewServerFailureError(500), errs.ErrServerFailure)
	})
}
