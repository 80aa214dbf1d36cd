package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is sent with 503 responses to failures the client may
// resubmit.
const retryAfterSeconds = 1

// statusOf maps an application error to its HTTP status. Retryable failures
// are checked first because they also unwrap to their last cause.
func statusOf(err error) int {
	switch {
	case errs.IsRetryable(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrConfirmationRequired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}

	if code == http.StatusServiceUnavailable {
		ctx.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// HTTPErrorHandler renders errors returned outside the operation handlers,
// such as unknown routes, in the same shape as every other error.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
			return
		}

		_ = writeError(ctx, logger, err)
	}
}
