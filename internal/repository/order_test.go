package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	users    UserRepository
	products ProductRepository
	orders   OrderRepository
	user     *models.User
	widget   *models.Product
	gadget   *models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := setupTestDB(t)
	f := &orderFixture{
		users:    NewUserRepository(db),
		products: NewProductRepository(db),
		orders:   NewOrderRepository(db),
	}
	f.user = createUser(t, f.users, "orders@example.com")
	f.widget = createProduct(t, f.products, "Widget", 2.5)
	f.gadget = createProduct(t, f.products, "Gadget", 10)
	return f
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestOrderRepository_Create(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	order := &models.Order{UserID: f.user.ID}
	require.NoError(t, f.orders.Create(ctx, order, []uint{f.gadget.ID, f.widget.ID, f.gadget.ID}))
	assert.NotZero(t, order.ID)

	got, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, got.User.ID)
	assert.Equal(t, "orders@example.com", got.User.Email)
	assert.Equal(t, []uint{f.widget.ID, f.gadget.ID}, productIDs(got.Products))
	assert.True(t, got.OrderDate.After(before))
}

func TestOrderRepository_CreateRejectsMissingReferences(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	err := f.orders.Create(ctx, &models.Order{UserID: 999}, nil)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	assert.Contains(t, err.Error(), "User")

	err = f.orders.Create(ctx, &models.Order{UserID: f.user.ID}, []uint{f.widget.ID, 555})
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	assert.Contains(t, err.Error(), "Product")

	all, err := f.orders.List(ctx, models.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "failed creates must not leave orders behind")
}

func TestOrderRepository_ListByUser(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	other := createUser(t, f.users, "someone@example.com")

	require.NoError(t, f.orders.Create(ctx, &models.Order{UserID: f.user.ID}, nil))
	require.NoError(t, f.orders.Create(ctx, &models.Order{UserID: other.ID}, nil))
	require.NoError(t, f.orders.Create(ctx, &models.Order{UserID: f.user.ID}, []uint{f.widget.ID}))

	mine, err := f.orders.ListByUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, f.user.ID, o.UserID)
	}
	assert.Less(t, mine[0].ID, mine[1].ID)
	assert.Empty(t, mine[0].Products)

	_, err = f.orders.ListByUser(ctx, 4242)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	all, err := f.orders.List(ctx, models.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderRepository_AddAndRemoveProduct(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &models.Order{UserID: f.user.ID}
	require.NoError(t, f.orders.Create(ctx, order, nil))

	require.NoError(t, f.orders.AddProduct(ctx, order.ID, f.widget.ID))
	require.NoError(t, f.orders.AddProduct(ctx, order.ID, f.widget.ID))
	require.NoError(t, f.orders.AddProduct(ctx, order.ID, f.gadget.ID))

	listed, err := f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.widget.ID, f.gadget.ID}, productIDs(listed))

	err = f.orders.AddProduct(ctx, order.ID, 777)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	err = f.orders.AddProduct(ctx, 777, f.widget.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	require.NoError(t, f.orders.RemoveProduct(ctx, order.ID, f.widget.ID))

	listed, err = f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.gadget.ID}, productIDs(listed))

	err = f.orders.RemoveProduct(ctx, order.ID, f.widget.ID)
	assert.Equal(t, models.CodeNotAssociated, models.ErrorCode(err))

	err = f.orders.RemoveProduct(ctx, 888, f.gadget.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	listed, err = f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1, "a failed remove must not mutate the order")
}

func TestOrderRepository_ListProductsMissingOrder(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.ListProducts(context.Background(), 31337)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestOrderRepository_ReplaceProducts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &models.Order{UserID: f.user.ID}
	require.NoError(t, f.orders.Create(ctx, order, []uint{f.widget.ID}))

	require.NoError(t, f.orders.ReplaceProducts(ctx, order.ID, []uint{f.gadget.ID, f.gadget.ID}))
	listed, err := f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.gadget.ID}, productIDs(listed))

	err = f.orders.ReplaceProducts(ctx, order.ID, []uint{f.widget.ID, 12345})
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	listed, err = f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.gadget.ID}, productIDs(listed), "failed replace must roll back")

	require.NoError(t, f.orders.ReplaceProducts(ctx, order.ID, []uint{}))
	listed, err = f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = f.orders.ReplaceProducts(ctx, 9999, nil)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestOrderRepository_DeleteRemovesLinks(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &models.Order{UserID: f.user.ID}
	require.NoError(t, f.orders.Create(ctx, order, []uint{f.widget.ID, f.gadget.ID}))

	require.NoError(t, f.orders.Delete(ctx, order.ID))

	_, err := f.orders.GetByID(ctx, order.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	_, err = f.products.GetByID(ctx, f.widget.ID)
	assert.NoError(t, err, "products outlive the orders that referenced them")

	_, err = f.users.GetByID(ctx, f.user.ID)
	assert.NoError(t, err)

	err = f.orders.Delete(ctx, order.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, uniqueIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}
