package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/gym-scheduler/internal/report"
	"github.com/BruksfildServices01/gym-scheduler/internal/usecase/admin"
)

type AdminHandler struct {
	render  *Renderer
	summary *admin.GetSummary
}

func NewAdminHandler(render *Renderer, summary *admin.GetSummary) *AdminHandler {
	return &AdminHandler{render: render, summary: summary}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_dashboard", "Admin dashboard", gin.H{
		"Summary": s,
	})
}

func (h *AdminHandler) Export(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	name := "summary-" + s.GeneratedAt.Format("2006-01-02") + ".xlsx"
	err = httpresp.Attachment(c, name, report.ContentType, func(w io.Writer) error {
		return report.WriteSummary(w, s)
	})
	if err != nil {
		// headers are already out, nothing left to render
		slog.ErrorContext(c.Request.Context(), "summary export failed", "err", err)
	}
}
