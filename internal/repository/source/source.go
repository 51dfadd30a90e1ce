// Package source reads the product, policy and order tables from JSON files.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/corpus"
	"github.com/kailas-cloud/supportdesk/internal/domain/order"
)

// LoadProducts reads a JSON array of products.
func LoadProducts(path string) ([]corpus.Product, error) {
	return loadTable[corpus.Product](path, "products")
}

// LoadPolicies reads a JSON array of policies.
func LoadPolicies(path string) ([]corpus.Policy, error) {
	return loadTable[corpus.Policy](path, "policies")
}

// LoadOrders reads a JSON array of orders.
func LoadOrders(path string) ([]order.Order, error) {
	return loadTable[order.Order](path, "orders")
}

// Optional turns a missing-file error into an empty table.
func Optional[T any](rows []T, err error) ([]T, error) {
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	return rows, err
}

func loadTable[T any](path, name string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", name, path, err)
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s %s: %v: %w", name, path, err, domain.ErrInvalidInput)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// Files locates the source tables on disk.
type Files struct {
	ProductsPath string
	PoliciesPath string
	OrdersPath   string
}

// Products loads the product table. A missing file is an error.
func (f Files) Products() ([]corpus.Product, error) { return LoadProducts(f.ProductsPath) }

// Policies loads the policy table. A missing file is an error.
func (f Files) Policies() ([]corpus.Policy, error) { return LoadPolicies(f.PoliciesPath) }

// Orders loads the order table. A missing file is an error.
func (f Files) Orders() ([]order.Order, error) { return LoadOrders(f.OrdersPath) }
