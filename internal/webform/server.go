// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webform serves the graphical shell: a single local web page with
// the same fields as the CLI, running each batch on a background goroutine
// so the interface stays responsive. The engine is treated as an opaque
// blocking call; status strings and log lines reach the page through the
// same sink contract the CLI uses.
package webform

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/batchpix/internal/converter"
	"github.com/pdiddy/batchpix/pkg/types"
)

// Server owns the form state: at most one batch runs at a time, and its log
// lines accumulate until the next batch starts.
type Server struct {
	cfg    types.ServeConfig
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	status  string
	lines   []string
}

// New returns a Server with no batch in progress.
func New(cfg types.ServeConfig, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger, status: "Idle"}
}

// Handler builds the gin router for the form, the batch trigger, and the
// status poll.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleForm)
	r.POST("/convert", s.handleConvert)
	r.GET("/status", s.handleStatus)

	return r
}

func (s *Server) handleForm(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, formPage)
}

// handleConvert starts a batch from the submitted form fields. While a batch
// is running further submissions are rejected rather than queued.
func (s *Server) handleConvert(c *gin.Context) {
	req, err := requestFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "a conversion is already running"})
		return
	}
	s.running = true
	s.status = "Converting..."
	s.lines = nil
	s.mu.Unlock()

	s.logger.Info("starting batch",
		zap.String("input", req.InputDir),
		zap.String("format", string(req.Format)),
		zap.Bool("rename", req.Rename))

	go s.run(req)

	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}

// run executes the batch on its own goroutine. Conflicts are resolved by
// skipping, matching the original form's behavior of never prompting.
func (s *Server) run(req types.Request) {
	result := converter.Run(req, converter.SinkFunc(s.appendLine), converter.SkipPolicy{})

	s.mu.Lock()
	s.running = false
	s.status = "Conversion complete!"
	s.mu.Unlock()

	s.logger.Info("batch finished",
		zap.Int("converted", result.Converted),
		zap.Int("renamed", result.Renamed))
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	snapshot := gin.H{
		"running": s.running,
		"status":  s.status,
		"lines":   append([]string(nil), s.lines...),
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) appendLine(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

// requestFromForm maps the submitted fields onto a validated engine request.
func requestFromForm(c *gin.Context) (types.Request, error) {
	format, err := types.ParseFormat(c.DefaultPostForm("format", "png"))
	if err != nil {
		return types.Request{}, err
	}

	start := 1
	if v := strings.TrimSpace(c.PostForm("start")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			start = n
		}
	}

	prefix := strings.TrimSpace(c.PostForm("prefix"))
	if prefix == "" {
		prefix = "image"
	}

	input := strings.TrimSpace(c.PostForm("input"))
	if input == "" {
		input = "."
	}

	req := types.Request{
		InputDir:        input,
		OutputDir:       strings.TrimSpace(c.PostForm("output")),
		Prefix:          prefix,
		StartNumber:     start,
		Rename:          c.PostForm("rename") == "true",
		DeleteOriginals: c.PostForm("delete") == "true",
		Format:          format,
		Ext:             format.Ext(),
	}
	if err := req.Validate(); err != nil {
		return types.Request{}, err
	}
	return req, nil
}

// formPage is the whole graphical surface. It mirrors the CLI fields and
// polls /status for progress lines while a batch runs.
const formPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>batchpix</title>
<style>
body { font-family: sans-serif; max-width: 40em; margin: 2em auto; }
label { display: block; margin-top: 0.8em; }
input[type=text], input[type=number] { width: 100%; }
#log { white-space: pre-wrap; background: #f4f4f4; padding: 1em; margin-top: 1em; }
</style>
</head>
<body>
<h1>batchpix</h1>
<form id="form">
  <label>Input folder <input type="text" name="input" value="."></label>
  <label>Output folder (optional) <input type="text" name="output"></label>
  <label>Format
    <select name="format">
      <option value="png" selected>PNG (preserve transparency)</option>
      <option value="jpeg">JPEG (no transparency)</option>
    </select>
  </label>
  <label><input type="checkbox" name="rename" value="true" checked> Rename with sequential numbers</label>
  <label>Prefix <input type="text" name="prefix" value="image"></label>
  <label>Start number <input type="number" name="start" value="1"></label>
  <label><input type="checkbox" name="delete" value="true"> Delete original files after conversion</label>
  <button type="submit">Start Conversion</button>
</form>
<p id="status"></p>
<div id="log"></div>
<script>
const form = document.getElementById('form');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const resp = await fetch('/convert', { method: 'POST', body: new URLSearchParams(new FormData(form)) });
  if (!resp.ok) {
    const body = await resp.json();
    document.getElementById('status').textContent = body.error;
    return;
  }
  poll();
});
async function poll() {
  const resp = await fetch('/status');
  const body = await resp.json();
  document.getElementById('status').textContent = body.status;
  document.getElementById('log').textContent = (body.lines || []).join('\n');
  if (body.running) setTimeout(poll, 500);
}
</script>
</body>
</html>
`
