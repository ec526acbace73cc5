package server

import (
	"time"

	"storefront/internal/models"
)

type userResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type productResponse struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

type orderResponse struct {
	ID        uint              `json:"id"`
	OrderDate string            `json:"order_date"`
	UserID    uint              `json:"user_id"`
	User      userResponse      `json:"user"`
	Products  []productResponse `json:"products"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type orderProductsResponse struct {
	Message  string            `json:"message"`
	OrderID  uint              `json:"order_id"`
	Products []productResponse `json:"products"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Address: u.Address, Email: u.Email}
}

func toUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

func toProductResponse(p *models.Product) productResponse {
	return productResponse{ID: p.ID, ProductName: p.ProductName, Price: p.Price}
}

func toProductResponses(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toOrderResponse(o *models.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		OrderDate: o.OrderDate.UTC().Format(time.RFC3339),
		UserID:    o.UserID,
		User:      toUserResponse(&o.User),
		Products:  toProductResponses(o.Products),
	}
}

func toOrderResponses(orders []models.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
