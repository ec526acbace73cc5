package server

import (
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateProduct handles POST /products
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	product, err := s.productService.CreateProduct(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetProducts handles GET /products
func (s *Server) GetProducts(c *fiber.Ctx) error {
	products, err := s.productService.ListProducts(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toProductResponses(products))
}

// GetProduct handles GET /products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// UpdateProduct handles PUT /products/:id
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.ProductPatch
	if err := parseBody(c, &patch); err != nil {
		return nil
	}

	product, err := s.productService.UpdateProduct(c.UserContext(), id, patch)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// DeleteProduct handles DELETE /products/:id
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.productService.DeleteProduct(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messageResponse{Message: "Product deleted successfully"})
}
