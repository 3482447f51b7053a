package validate

import (
	"errors"

	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product payload", err)
		}

		if !input.Price.IsPositive() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Product price must be positive", errors.New(input.Name))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category payload", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreatePartner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PartnerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid partner payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid partner payload", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateStock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.StockUpdateInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid stock payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid stock payload", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func AddStockMovement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.StockMovementInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movement payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movement payload", err)
		}

		if !input.Type.Valid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown movement type", errors.New(string(input.Type)))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateOutlet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOutletInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid outlet payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid outlet payload", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
