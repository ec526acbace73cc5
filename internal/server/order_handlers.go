package server

import (
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder handles POST /orders
func (s *Server) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	order, err := s.orderService.CreateOrder(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// GetOrders handles GET /orders?user_id=
func (s *Server) GetOrders(c *fiber.Ctx) error {
	userID, err := parseOptionalQueryID(c, "user_id", "user ID")
	if err != nil {
		return nil
	}

	orders, err := s.orderService.ListOrders(c.UserContext(), models.OrderFilter{UserID: userID})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toOrderResponses(orders))
}

// GetOrder handles GET /orders/:id
func (s *Server) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	order, err := s.orderService.GetOrder(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// GetUserOrders handles GET /orders/user/:userId
func (s *Server) GetUserOrders(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	orders, err := s.orderService.ListOrdersByUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toOrderResponses(orders))
}

// UpdateOrder handles PUT /orders/:id. A product_ids array replaces the
// order's products; without it the order is returned unchanged.
func (s *Server) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.OrderPatch
	if err := parseBody(c, &patch); err != nil {
		return nil
	}

	order, err := s.orderService.UpdateOrder(c.UserContext(), id, patch)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// DeleteOrder handles DELETE /orders/:id
func (s *Server) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.orderService.DeleteOrder(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messageResponse{Message: "Order deleted successfully"})
}

// GetOrderProducts handles GET /orders/:orderId/products
func (s *Server) GetOrderProducts(c *fiber.Ctx) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return nil
	}

	products, err := s.orderService.ListProducts(c.UserContext(), orderID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toProductResponses(products))
}

// AddProductToOrder handles POST /orders/:orderId/add_product/:productId
func (s *Server) AddProductToOrder(c *fiber.Ctx) error {
	orderID, productID, ok := parseOrderProductIDs(c)
	if !ok {
		return nil
	}

	products, err := s.orderService.AddProduct(c.UserContext(), orderID, productID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(orderProductsResponse{
		Message:  "Product added to order successfully",
		OrderID:  orderID,
		Products: toProductResponses(products),
	})
}

// RemoveProductFromOrder handles DELETE /orders/:orderId/remove_product/:productId
func (s *Server) RemoveProductFromOrder(c *fiber.Ctx) error {
	orderID, productID, ok := parseOrderProductIDs(c)
	if !ok {
		return nil
	}

	products, err := s.orderService.RemoveProduct(c.UserContext(), orderID, productID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(orderProductsResponse{
		Message:  "Product removed from order successfully",
		OrderID:  orderID,
		Products: toProductResponses(products),
	})
}

func parseOrderProductIDs(c *fiber.Ctx) (orderID, productID uint, ok bool) {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return 0, 0, false
	}
	productID, err = parseID(c, "productId")
	if err != nil {
		return 0, 0, false
	}
	return orderID, productID, true
}
