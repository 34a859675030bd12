package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-history/internal/app"
	"github.com/MKhiriev/go-qr-history/internal/render"
	"github.com/MKhiriev/go-qr-history/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidRequestBody: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrNoQRCode:           {http.StatusNotFound, app.MsgNoQRCode},

	validators.ErrTextTooLong: {http.StatusBadRequest, app.MsgTextTooLong},
	validators.ErrEmptyText:   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	validators.ErrInvalidSize: {http.StatusBadRequest, app.MsgRenderFailed},

	render.ErrEmptyText:   {http.StatusBadRequest, app.MsgRenderFailed},
	render.ErrInvalidSize: {http.StatusBadRequest, app.MsgRenderFailed},
	render.ErrSuperseded:  {http.StatusConflict, app.MsgRenderSuperseded},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRenderTimeout},
	context.Canceled:         {http.StatusServiceUnavailable, app.MsgRenderTimeout},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
