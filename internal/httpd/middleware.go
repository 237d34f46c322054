package httpd

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"time"
)

const requestIDKey = "request_id"

func requestLogger(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.WithContext(c.UserContext())
	if id, ok := c.Locals(requestIDKey).(string); ok {
		entry = entry.WithField(requestIDKey, id)
	}
	return entry
}

func (s *Server) loggerMiddleware(c *fiber.Ctx) error {
	c.Locals(requestIDKey, uuid.NewString())

	t0 := time.Now().Truncate(time.Millisecond)
	err := c.Next()
	t1 := time.Now().Truncate(time.Millisecond)

	requestLogger(c).Debugf("%v %v %d %v %db",
		c.Method(), c.OriginalURL(), c.Response().StatusCode(), t1.Sub(t0), len(c.Response().Body()))
	return err
}

// errorMiddleware turns panics and handler errors into complete responses so
// a client never sees a dropped connection.
func (s *Server) errorMiddleware(c *fiber.Ctx) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}

		requestLogger(c).Warnf("Panic %v %v %v", c.Method(), c.OriginalURL(), e)
		err = internalError(c)
	}()

	err = c.Next()
	if err == nil {
		return nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}

	requestLogger(c).Errorf("Internal server error, err=%v", err)
	return internalError(c)
}

func internalError(c *fiber.Ctx) error {
	c.Response().Header.Del(fiber.HeaderContentType)
	return c.Status(fiber.StatusInternalServerError).SendString(utils.StatusMessage(fiber.StatusInternalServerError))
}

func (s *Server) corsMiddleware(c *fiber.Ctx) error {
	origin := c.Get(fiber.HeaderOrigin)
	if len(origin) > 0 {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
	} else {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	}

	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, HEAD, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders,
		"Accept, "+
			"Accept-Encoding, "+
			"Accept-Language, "+
			"Cache-Control, "+
			"Content-Type, "+
			"Origin, "+
			"Referer, "+
			"User-Agent")

	if c.Method() == fiber.MethodOptions {
		c.Status(fiber.StatusOK)
		return nil
	}
	return c.Next()
}
