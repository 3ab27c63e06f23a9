package rankings

import (
	"strconv"

	"rankings-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for ranking synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rankings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rankings")
	group.Post("/sync", h.HandleSync)
	group.Get("/runs", h.HandleRuns)
}

// HandleSync triggers a full sync from the configured feed file.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Sync triggered via HTTP")

	report, err := h.service.SyncFeed(c.Context())
	if err != nil {
		if report == nil {
			// Feed could not be loaded; nothing was attempted.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(report)
	}

	return c.JSON(report)
}

// HandleRuns lists the most recent recorded sync runs.
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	runs, err := h.service.RecentRuns(limit)
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"runs": runs})
}
