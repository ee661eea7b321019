package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPObserver registra duración y código de cada petición.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, start time.Time)
}

// MetricsMiddleware mide cada petición con la ruta registrada (no la URL cruda)
// para no disparar la cardinalidad de las etiquetas.
func MetricsMiddleware(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFor(err)
		}
		obs.ObserveHTTP(c.Method(), c.Route().Path, status, start)
		return err
	}
}
