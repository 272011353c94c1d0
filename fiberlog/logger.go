package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "запрос api"

// getLogrusFields вычисляет значения тегов для записи лога
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New возвращает middleware логирования запросов api
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
		// preflight-запросы не логируются
		if c.Method() == fiber.MethodOptions {
			return err
		}

		if cfg.Logger == nil {
			log.WithFields(getLogrusFields(ftm, c, d)).Info(requestMessage)
			return err
		}
		entity := cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entity.Warn(requestMessage)
		} else {
			entity.Info(requestMessage)
		}
		return err
	}
}
