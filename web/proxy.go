package web

import (
	"io"
	"net/http"
	"time"
)

// proxyClient bounds upstream calls the same way the ESPN client does;
// http.DefaultClient has no timeout and would let a stalled upstream pin
// the handler forever.
var proxyClient = &http.Client{Timeout: 30 * time.Second}

// ProxyCoreAPI forwards /api/espn/* requests to the ESPN core API, giving
// the browser a same-origin path for $ref lookups that the core API's CORS
// policy would otherwise block. Only GETs pass through.
func (h *Handlers) ProxyCoreAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	target := h.espn.CoreAPIBase() + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid proxy path")
		return
	}

	resp, err := proxyClient.Do(req)
	if err != nil {
		h.logger.Warn("proxy request failed", "target", target, "error", err)
		writeError(w, http.StatusBadGateway, "upstream request failed")
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}
