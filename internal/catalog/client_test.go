package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"myshop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPayload = `[
	{"id":1,"title":"Backpack","price":109.95,"description":"A backpack","category":"men's clothing","image":"https://img.example/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"T-Shirt","price":22.3,"description":"A shirt","category":"men's clothing","image":"https://img.example/2.jpg","rating":{"rate":4.1,"count":259}}
]`

func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listingPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())

	products, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("109.95")))
	assert.Equal(t, 120, products[0].Rating.Count)
}

func TestClient_List_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())

	products, err := client.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestClient_List_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())

	_, err := client.List(context.Background())

	assert.Error(t, err)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1", r.URL.Path)
		w.Write([]byte(`{"id":1,"title":"Backpack","price":109.95,"image":"https://img.example/1.jpg"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())

	product, err := client.Get(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, int64(1), product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("109.95")))
}

func TestClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())

	_, err := client.Get(context.Background(), 42)

	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestClient_Get_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before the call

	client := NewClient(server.URL, zerolog.Nop())

	_, err := client.Get(context.Background(), 1)

	assert.Error(t, err)
}
