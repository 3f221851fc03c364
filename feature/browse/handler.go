package browse

import (
	"errors"
	"net/http"

	"bucket-browser/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the bucket browser.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes routes every method and path to the browser.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/*", h.HandleRequest)
}

// HandleRequest lists a prefix or streams an object, depending on the path.
func (h *Handler) HandleRequest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// The original path is still percent-encoded; Resolve decodes it.
	rawPath := string(c.Request().URI().PathOriginal())
	op := Resolve(c.Method(), rawPath)

	switch op.Kind {
	case OpReject:
		l.Warn("Request rejected",
			zap.String("method", c.Method()),
			zap.String("path", rawPath),
			zap.String("reason", op.Reason),
		)
		return c.Status(op.Status).SendString(http.StatusText(op.Status) + ": " + op.Reason)
	case OpList:
		return h.handleList(c, l, op)
	default:
		return h.handleFetch(c, l, op)
	}
}

func (h *Handler) handleList(c *fiber.Ctx, l *zap.Logger, op Operation) error {
	doc, err := h.service.RenderListing(c.UserContext(), op.Key, op.DisplayPrefix)
	if err != nil {
		return h.fail(c, l, op, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

func (h *Handler) handleFetch(c *fiber.Ctx, l *zap.Logger, op Operation) error {
	obj, err := h.service.FetchObject(c.UserContext(), op.Key)
	if err != nil {
		return h.fail(c, l, op, err)
	}

	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	if obj.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+obj.ETag+`"`)
	}
	if !obj.LastModified.IsZero() {
		c.Set(fiber.HeaderLastModified, obj.LastModified.UTC().Format(http.TimeFormat))
	}

	// fasthttp closes the body once it has been written out.
	return c.SendStream(obj.Body, int(obj.Size))
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, op Operation, err error) error {
	if errors.Is(err, ErrNotFound) {
		l.Debug("Not found", zap.String("key", op.Key))
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	l.Error("Request failed", zap.String("key", op.Key), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}
