package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hekto/internal/customer"
)

func TestAggregate_EmptyInput(t *testing.T) {
	assert.Equal(t, Metrics{}, Aggregate(nil))
	assert.Equal(t, Metrics{}, Aggregate([]customer.Customer{}))
}

func TestAggregate_UsersEqualsOrders(t *testing.T) {
	customers := []customer.Customer{
		{Name: "a"},
		{Name: "b"},
		{Name: "c"},
	}

	m := Aggregate(customers)

	// customer 문서 1건 = 주문 1건 규약
	assert.Equal(t, 3, m.TotalUsers)
	assert.Equal(t, 3, m.TotalOrders)
	assert.Equal(t, m.TotalUsers, m.TotalOrders)
}

func TestAggregate_ProductCount(t *testing.T) {
	// 품목 수 [2, 0, 3] → 총 5
	customers := []customer.Customer{
		{Items: []customer.Item{{ID: "a1"}, {ID: "a2"}}},
		{},
		{Items: []customer.Item{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}}},
	}

	m := Aggregate(customers)
	assert.Equal(t, 5, m.TotalProducts)
}

func TestAggregate_Revenue(t *testing.T) {
	customers := []customer.Customer{
		{Items: []customer.Item{{Price: 100}, {Price: 50.5}}},
		{Items: []customer.Item{{Price: 0}}},
		{Items: []customer.Item{{Price: 9.5}}},
	}

	m := Aggregate(customers)
	assert.InDelta(t, 160.0, m.TotalRevenue, 1e-9)
}

func TestAggregate_PendingAndNewAreAliases(t *testing.T) {
	customers := []customer.Customer{{Name: "a"}, {Name: "b"}}

	m := Aggregate(customers)
	assert.Equal(t, m.TotalOrders, m.PendingOrders)
	assert.Equal(t, m.TotalUsers, m.NewUsers)
}

// fakeFetcher는 고정 목록을 반환하는 fetcher 구현입니다.
type fakeFetcher struct {
	customers []customer.Customer
}

func (f *fakeFetcher) FetchCustomers() []customer.Customer {
	return f.customers
}

func TestService_GetMetrics(t *testing.T) {
	svc := NewService(&fakeFetcher{customers: []customer.Customer{
		{Items: []customer.Item{{Price: 30}, {Price: 20}}},
	}})

	m := svc.GetMetrics()
	assert.Equal(t, 1, m.TotalUsers)
	assert.Equal(t, 2, m.TotalProducts)
	assert.InDelta(t, 50.0, m.TotalRevenue, 1e-9)
}

func TestUsersVsProductsChart(t *testing.T) {
	t.Run("products가 최댓값", func(t *testing.T) {
		bars := usersVsProductsChart(Metrics{TotalUsers: 5, TotalProducts: 10})
		require.Len(t, bars, 2)

		assert.Equal(t, "Total Users", bars[0].Label)
		assert.Equal(t, 50, bars[0].Percent)
		assert.Equal(t, "Total Products", bars[1].Label)
		assert.Equal(t, 100, bars[1].Percent)
	})

	t.Run("전부 0이어도 0으로 나누지 않음", func(t *testing.T) {
		bars := usersVsProductsChart(Metrics{})
		require.Len(t, bars, 2)
		assert.Equal(t, 0, bars[0].Percent)
		assert.Equal(t, 0, bars[1].Percent)
	})
}
