package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/keianmejia/maribelle-api/models"
)

// AllCategories disables the category filter.
const AllCategories = "ALL"

var (
	// ErrProductNotFound is returned when the catalog service has no product
	// with the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrStaleQuery marks a fetch that finished after a newer one from the
	// same client started. Callers discard the result instead of rendering
	// over fresher state.
	ErrStaleQuery = errors.New("stale catalog query")
)

// Backend is the hosted catalog service. QueryProducts returns rows ordered
// by creation time descending, filtered by exact category when category is
// non-empty.
type Backend interface {
	QueryProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.NewProduct) (string, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) error
	DeleteProduct(ctx context.Context, id string) error
	InsertImage(ctx context.Context, image models.ProductImage) error
}

type FetchOptions struct {
	Search   string
	Category string

	// Client scopes the stale-query fence: only a newer fetch from the same
	// client can supersede an older one. Callers with a single query stream
	// may leave it empty.
	Client string
}

// Adapter translates storefront filter state into backend queries and
// normalizes what comes back. The category filter is pushed to the backend;
// the free-text filter runs client-side because it spans fields the backend
// does not index together.
type Adapter struct {
	backend Backend

	mu   sync.Mutex
	gens map[string]uint64
}

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend, gens: map[string]uint64{}}
}

func (a *Adapter) nextGen(client string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gens[client]++
	return a.gens[client]
}

func (a *Adapter) currentGen(client string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gens[client]
}

func (a *Adapter) FetchProducts(ctx context.Context, opts FetchOptions) ([]models.Product, error) {
	token := a.nextGen(opts.Client)

	category := opts.Category
	if category == AllCategories {
		category = ""
	}

	products, err := a.backend.QueryProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	if a.currentGen(opts.Client) != token {
		return nil, ErrStaleQuery
	}

	normalized := make([]models.Product, 0, len(products))
	for _, p := range products {
		normalized = append(normalized, Normalize(p))
	}

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	if search == "" {
		return normalized, nil
	}

	filtered := make([]models.Product, 0, len(normalized))
	for _, p := range normalized {
		if strings.Contains(strings.ToLower(p.Title), search) ||
			strings.Contains(strings.ToLower(p.Category), search) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (a *Adapter) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := a.backend.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}
	normalized := Normalize(*product)
	return &normalized, nil
}

// Categories lists the distinct categories across the whole catalog, sorted,
// for the shop filter bar.
func (a *Adapter) Categories(ctx context.Context) ([]string, error) {
	products, err := a.backend.QueryProducts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Normalize sorts the gallery ascending by sort key, ties keeping their
// original order, and flattens the first URL into the primary image.
func Normalize(p models.Product) models.Product {
	images := make([]models.ProductImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Sort < images[j].Sort
	})
	p.Images = images
	if len(images) > 0 {
		p.Img = images[0].URL
	} else {
		p.Img = ""
	}
	return p
}
