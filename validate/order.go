package validate

import (
	"errors"

	"pos_cafe/constants"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder rejects bad carts before the handler opens a transaction:
// empty cart, unknown payment method, non-positive quantities, negative
// prices.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order payload", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order payload", err)
		}

		if len(input.Items) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_CART, errors.New("cart has no items"))
		}

		if !input.PaymentMethod.Valid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown payment method", errors.New(string(input.PaymentMethod)))
		}

		for _, item := range input.Items {
			if item.Price.IsNegative() {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Item price cannot be negative", errors.New(item.Name))
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, err)
		}

		if !input.Status.Valid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, errors.New(string(input.Status)))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
