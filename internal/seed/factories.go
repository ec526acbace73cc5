// Package seed provides helpers to create demo data for the store database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math"
	"strings"

	"storefront/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds domain entities with fake but plausible content.
type Factory struct {
	faker *gofakeit.Faker
	// suffix counter that keeps generated emails unique within a run
	nextEmail int
}

// NewFactory returns a Factory. A zero seed picks a random one.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// BuildUser returns an unsaved user with a unique email.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	f.nextEmail++
	user := &models.User{
		Name:    f.faker.Name(),
		Address: f.faker.Address().Address,
		Email: fmt.Sprintf("%s.%d@%s",
			strings.ToLower(f.faker.Username()), f.nextEmail, f.faker.DomainName()),
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildProduct returns an unsaved product priced in whole cents.
func (f *Factory) BuildProduct(overrides ...func(*models.Product)) *models.Product {
	product := &models.Product{
		ProductName: f.faker.ProductName(),
		Price:       math.Round(f.faker.Price(1, 500)*100) / 100,
	}
	for _, override := range overrides {
		override(product)
	}
	return product
}

// PickProducts chooses up to limit distinct product ids from pool.
func (f *Factory) PickProducts(pool []uint, limit int) []uint {
	if len(pool) == 0 || limit <= 0 {
		return nil
	}
	if limit > len(pool) {
		limit = len(pool)
	}
	n := f.faker.Number(0, limit)

	shuffled := append([]uint(nil), pool...)
	f.faker.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
