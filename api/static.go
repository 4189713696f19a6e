package api

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog/log"
)

// newAssetHandler serves the frontend. Production serves the built files;
// development proxies to the dev server when one is configured.
func newAssetHandler(settings config.Settings) (http.Handler, error) {
	if !settings.IsProduction() && settings.DevServerURL != "" {
		return newDevProxy(settings.DevServerURL)
	}
	return newSPAHandler(settings.StaticDir), nil
}

// newSPAHandler serves files from staticDir and falls back to index.html so
// client-side routes resolve.
func newSPAHandler(staticDir string) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "spaHandler").Logger())
	fileServer := http.FileServer(http.Dir(staticDir))
	index := filepath.Join(staticDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			responder.WriteError(w, r, errs.NewApiErr(http.StatusMethodNotAllowed, "method not allowed"))
			return
		}

		cleaned := path.Clean("/" + r.URL.Path)
		if info, err := os.Stat(filepath.Join(staticDir, filepath.FromSlash(cleaned))); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		if _, err := os.Stat(index); err != nil {
			responder.WriteError(w, r, errs.NewNotFoundError("frontend build").WithMessage("not found"))
			return
		}
		http.ServeFile(w, r, index)
	})
}

func newDevProxy(rawURL string) (http.Handler, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid DEV_SERVER_URL %q", rawURL)
	}

	logger := log.With().Str("handlerName", "devProxy").Logger()
	responder := NewResponder(logger)

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		responder.WriteError(w, r, errs.NewServiceUnreachableError("dev server", err).WithMessage("Dev server unavailable"))
	}
	return proxy, nil
}
