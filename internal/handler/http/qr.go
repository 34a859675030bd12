package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/utils"
	"github.com/MKhiriev/go-qr-history/models"
)

// generateQR runs the render-and-upload handler and answers once drawing is
// over. The upload keeps going after the response is sent.
func (h *Handler) generateQR(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid generate request body")
		h.writeError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err))
		return
	}

	qr := h.services.QRService
	done := qr.Generate(r.Context(), req.Text)
	if err := done.Wait(r.Context()); err != nil {
		log.Err(err).Msg("qr render did not complete")
		h.writeError(w, r, err)
		return
	}

	resp := models.GenerateResponse{Visible: qr.Container().Visible()}
	if resp.Visible {
		if surface, ok := qr.Container().Surface(); ok {
			image, err := surface.DataURL()
			if err != nil {
				log.Err(err).Msg("qr data url encoding failed")
				h.writeError(w, r, err)
				return
			}
			resp.Image = image
		}
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("write generate response")
	}
}

func (h *Handler) currentQR(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	container := h.services.QRService.Container()
	surface, ok := container.Surface()
	if !container.Visible() || !ok {
		h.writeError(w, r, ErrNoQRCode)
		return
	}

	raw, err := surface.EncodePNG()
	if err != nil {
		log.Err(err).Msg("qr png encoding failed")
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	if _, writeErr := utils.WriteJSON(w, map[string]string{"error": resp.message}, resp.status); writeErr != nil {
		logger.FromContextOr(r.Context(), h.logger).Err(writeErr).Msg("write error response")
	}
}
