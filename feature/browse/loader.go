package browse

import (
	"bucket-browser/core/storage"
	"bucket-browser/feature/browse/render"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new browse feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, format render.SizeFormat) *Feature {
	svc := NewService(client, bucket, logger, format)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "browse"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes. It claims every path, so it must load last.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service for non-HTTP callers such as the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
