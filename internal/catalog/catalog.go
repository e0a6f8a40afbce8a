// Package catalog holds the product table. Products are static data; adding
// or removing one is a data change only.
package catalog

// Product is one storefront catalog entry. Price is in whole currency units.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Badge       string   `json:"badge,omitempty"`
}

// Categories lists the storefront categories in display order. "All" is a
// pseudo-category matching every product.
var Categories = []string{
	"All",
	"Skincare",
	"Fragrance",
	"Diffuser & Home Scent",
	"Haircare & Wig",
}

// Repository answers product lookups against the static table.
type Repository struct {
	products []Product
	byID     map[string]Product
}

func NewRepository() *Repository {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Repository{products: products, byID: byID}
}

// Get returns the product with the given id.
func (r *Repository) Get(id string) (Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List returns all products in display order.
func (r *Repository) List() []Product {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// ByCategory returns the products in a category; "All" or empty returns
// everything.
func (r *Repository) ByCategory(category string) []Product {
	if category == "" || category == "All" {
		return r.List()
	}
	var out []Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
