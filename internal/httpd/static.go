package httpd

import (
	"github.com/gofiber/fiber/v2"
)

// static mounts the resolver for every method and path.
func (s *Server) static(app *fiber.App) {
	app.Use(s.staticApp)
}

func (s *Server) staticApp(c *fiber.Ctx) error {
	resp := s.resolver.Resolve(c.Path())

	c.Status(resp.Status)
	if resp.ContentType != "" {
		c.Set(fiber.HeaderContentType, resp.ContentType)
	}
	return c.Send(resp.Body)
}
