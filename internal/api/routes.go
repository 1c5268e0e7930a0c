package api

import (
	"net/http"

	"github.com/JaimeStill/redline/internal/config"
	"github.com/JaimeStill/redline/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Analyses.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
