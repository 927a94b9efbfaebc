package handler

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
)

var sharePageTmpl = template.Must(template.New("share").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>MoM Share - {{.Title}}</title>
  <style>
    body { margin: 0; font-family: Segoe UI, sans-serif; background: #f6f7fb; color: #1d2630; }
    .wrap { max-width: 920px; margin: 32px auto; padding: 0 16px; }
    .card { background: #fff; border: 1px solid #dde3ed; border-radius: 12px; padding: 20px; }
    h1 { margin-top: 0; font-size: 22px; }
    pre { white-space: pre-wrap; line-height: 1.5; font-size: 14px; }
    .meta { color: #5a6a7f; font-size: 13px; margin-bottom: 12px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="card">
      <h1>{{.Title}}</h1>
      <div class="meta">Read-only shared Minutes of Meeting</div>
      <pre>{{.Mom}}</pre>
    </div>
  </div>
</body>
</html>`))

// Share serves the public read-only MoM page
type Share struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewShare creates a new share handler
func NewShare(service *meeting.Service, logger *zap.Logger) *Share {
	return &Share{
		service: service,
		logger:  logger,
	}
}

// Page renders the shared MoM as HTML
// GET /share/mom/:shareId
func (h *Share) Page(c echo.Context) error {
	m, err := h.service.GetByShareID(c.Request().Context(), c.Param("shareId"))
	if err != nil || m.Mom == "" {
		return c.String(http.StatusNotFound, "MoM share link not found.")
	}

	title := m.Title
	if title == "" {
		title = "Meeting"
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return sharePageTmpl.Execute(c.Response(), struct {
		Title string
		Mom   string
	}{Title: title, Mom: m.Mom})
}
