package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// collectFields вычисляет значения настроенных тегов для записи access-лога
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}

// New — access-лог запросов api, уровень записи зависит от статуса ответа
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		// cors preflight не логируем
		if c.Method() == fiber.MethodOptions {
			return err
		}

		logger := cfg.Logger
		if logger == nil {
			logger = log.StandardLogger()
		}
		entry := logger.WithFields(collectFields(ftm, c, d))
		status := c.Response().StatusCode()
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("запрос api")
		case status >= fiber.StatusMultipleChoices:
			entry.Warn("запрос api")
		default:
			entry.Info("запрос api")
		}
		return err
	}
}
