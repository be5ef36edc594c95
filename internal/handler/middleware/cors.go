package middleware

import (
	"log/slog"
	"slices"

	"staybook/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the API reads besides the configured ones.
var apiHeaders = []string{"Stripe-Signature", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	for _, h := range apiHeaders {
		if !slices.Contains(allowHeaders, h) {
			allowHeaders = append(allowHeaders, h)
		}
	}
	exposeHeaders := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(exposeHeaders, requestIDHeader) {
		exposeHeaders = append(exposeHeaders, requestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
