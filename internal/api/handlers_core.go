package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "TriageX Backend API is running!"})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
}
