package responses

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error reply. Details is only set
// for the invoice partial-failure case, where the caller has to be able
// to tell "invoice saved, transaction failed" apart from a total failure.
type ErrorResponse struct {
	Error          string `json:"error"`
	Details        string `json:"details,omitempty"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          "Bad arguments",
	HttpStatusCode: 400,
}

var NotFoundError = ErrorResponse{
	Error:          "record not found",
	HttpStatusCode: 404,
}

var InvoiceNumberTakenError = ErrorResponse{
	Error:          "invoice number already exists in transactions",
	HttpStatusCode: 409,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		message := fmt.Sprintf("%v", he.Message)
		c.JSON(he.Code, &ErrorResponse{Error: message, HttpStatusCode: he.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
