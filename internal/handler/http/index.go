package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-qr-history/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	Version string
	Visible bool
	Image   template.URL
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	page := indexPage{
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}

	container := h.services.QRService.Container()
	if surface, ok := container.Surface(); ok && container.Visible() {
		if image, err := surface.DataURL(); err == nil {
			page.Visible = true
			// data:image/png URLs produced by the renderer are safe to embed
			page.Image = template.URL(image)
		}
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, page); err != nil {
		log.Err(err).Msg("render index page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
