package salesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated handle on the API. It is safe for concurrent
// use; the access token is immutable for the session's lifetime.
type Session struct {
	client      *SDKClient
	accessToken string
}

// AccessToken exposes the raw bearer token, mainly for tests.
func (s *Session) AccessToken() string { return s.accessToken }

// ============================================================================
// Clients
// ============================================================================

func (s *Session) ListClients(ctx context.Context) ([]Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/client", nil)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *Session) GetClient(ctx context.Context, id int64) (Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/client/%d", id), nil)
	if err != nil {
		return Client{}, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return Client{}, err
	}
	return client, nil
}

func (s *Session) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/client/%d", id), req)
	if err != nil {
		return Client{}, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return Client{}, err
	}
	return client, nil
}

func (s *Session) DeleteClient(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/client/%d", id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Products
// ============================================================================

func (s *Session) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/product", req)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := decodeJSON(resp, &product, http.StatusCreated); err != nil {
		return Product{}, err
	}
	return product, nil
}

// ListProducts returns products, optionally bounded by price. Nil bounds
// mean unbounded.
func (s *Session) ListProducts(ctx context.Context, minPrice, maxPrice *float64) ([]Product, error) {
	path := "/product"
	query := url.Values{}
	if minPrice != nil {
		query.Set("min_price", strconv.FormatFloat(*minPrice, 'f', -1, 64))
	}
	if maxPrice != nil {
		query.Set("max_price", strconv.FormatFloat(*maxPrice, 'f', -1, 64))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := decodeJSON(resp, &products, http.StatusOK); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Session) GetProduct(ctx context.Context, id int64) (Product, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/product/%d", id), nil)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := decodeJSON(resp, &product, http.StatusOK); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (s *Session) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/product/%d", id), req)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := decodeJSON(resp, &product, http.StatusOK); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (s *Session) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/product/%d", id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Sales
// ============================================================================

func (s *Session) CreateSale(ctx context.Context, req CreateSaleRequest) (Sale, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/sale", req)
	if err != nil {
		return Sale{}, err
	}

	var sale Sale
	if err := decodeJSON(resp, &sale, http.StatusCreated); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Session) ListSales(ctx context.Context) ([]Sale, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/sale", nil)
	if err != nil {
		return nil, err
	}

	var sales []Sale
	if err := decodeJSON(resp, &sales, http.StatusOK); err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Session) GetSale(ctx context.Context, id int64) (Sale, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/sale/%d", id), nil)
	if err != nil {
		return Sale{}, err
	}

	var sale Sale
	if err := decodeJSON(resp, &sale, http.StatusOK); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Session) UpdateSale(ctx context.Context, id int64, req UpdateSaleRequest) (Sale, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/sale/%d", id), req)
	if err != nil {
		return Sale{}, err
	}

	var sale Sale
	if err := decodeJSON(resp, &sale, http.StatusOK); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Session) DeleteSale(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/sale/%d", id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
