package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"clinic-assistant-be/internal/config"
	"clinic-assistant-be/internal/pkg/serverutils"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db      *gorm.DB
	mongoDb *mongo.Database
	aiCfg   config.AIConfig
}

func NewHealthController(db *gorm.DB, mongoDb *mongo.Database, aiCfg config.AIConfig) IHealthController {
	return &healthController{db: db, mongoDb: mongoDb, aiCfg: aiCfg}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health pings every backing service individually so operators can see
// which dependency is down, not just that something is.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	checkCtx, cancel := context.WithTimeout(ctx.UserContext(), 3*time.Second)
	defer cancel()

	checks := fiber.Map{
		"postgres": c.postgresStatus(checkCtx),
		"vector":   c.vectorStatus(checkCtx),
		"mongo":    c.mongoStatus(checkCtx),
		"llm":      c.llmStatus(checkCtx),
	}

	status := "up"
	for _, v := range checks {
		if v != "up" {
			status = "degraded"
			break
		}
	}

	return ctx.JSON(serverutils.SuccessResponse(status, checks))
}

func (c *healthController) postgresStatus(ctx context.Context) string {
	if c.db == nil {
		return "down: not configured"
	}
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return "down: " + err.Error()
	}
	return "up"
}

func (c *healthController) vectorStatus(ctx context.Context) string {
	if c.db == nil {
		return "down: not configured"
	}
	var installed bool
	err := c.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')").
		Scan(&installed).Error
	if err != nil {
		return "down: " + err.Error()
	}
	if !installed {
		return "down: vector extension missing"
	}
	return "up"
}

func (c *healthController) mongoStatus(ctx context.Context) string {
	if c.mongoDb == nil {
		return "down: not configured"
	}
	if err := c.mongoDb.Client().Ping(ctx, nil); err != nil {
		return "down: " + err.Error()
	}
	return "up"
}

// llmStatus only checks reachability of the model server, not that the
// configured model is pulled.
func (c *healthController) llmStatus(ctx context.Context) string {
	if c.aiCfg.OllamaBaseURL == "" {
		return "down: not configured"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.aiCfg.OllamaBaseURL, nil)
	if err != nil {
		return "down: " + err.Error()
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "down: " + err.Error()
	}
	resp.Body.Close()
	return "up"
}
