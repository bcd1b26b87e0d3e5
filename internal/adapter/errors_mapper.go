package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/academyhub/academy-client/internal/app"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, code, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}

// ErrorMessage converts an adapter error into the fixed user-facing string
// shown in the UI. Unknown errors fall through to their own message.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return app.MsgAuthRequired
	case errors.Is(err, ErrForbidden):
		return app.MsgAccessDenied
	case errors.Is(err, ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, ErrServer):
		return app.MsgServerError
	case errors.Is(err, ErrMalformedResponse):
		return app.MsgInvalidResponse
	case errors.Is(err, ErrTransport):
		return app.MsgNetworkError
	default:
		return err.Error()
	}
}
