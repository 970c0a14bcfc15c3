package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/keianmejia/maribelle-api/models"
)

const productSelect = "id,title,price,category,description,is_sold_out,created_at,product_images(id,url,sort)"

// RestClient speaks the hosted catalog service's REST dialect: row filters
// as query params (category=eq.tops), embedded image rows, Prefer headers on
// mutations. All failures surface to the caller; nothing is retried.
type RestClient struct {
	http *resty.Client
}

func NewRestClient(baseURL, apiKey string) *RestClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Accept", "application/json")
	return &RestClient{http: client}
}

type productRow struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Price       float64               `json:"price"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	IsSoldOut   bool                  `json:"is_sold_out"`
	CreatedAt   string                `json:"created_at"`
	Images      []models.ProductImage `json:"product_images"`
}

func (row productRow) product() models.Product {
	return models.Product{
		ID:          row.ID,
		Title:       row.Title,
		Price:       row.Price,
		Category:    row.Category,
		Description: row.Description,
		IsSoldOut:   row.IsSoldOut,
		CreatedAt:   row.CreatedAt,
		Images:      row.Images,
	}
}

func (c *RestClient) QueryProducts(ctx context.Context, category string) ([]models.Product, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", productSelect).
		SetQueryParam("order", "created_at.desc")
	if category != "" {
		req.SetQueryParam("category", "eq."+category)
	}

	resp, err := req.Get("/rest/v1/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}

	var rows []productRow
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse products response: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.product())
	}
	return products, nil
}

func (c *RestClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", productSelect).
		SetQueryParam("id", "eq."+id).
		SetQueryParam("limit", "1").
		Get("/rest/v1/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}

	var rows []productRow
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse product response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrProductNotFound
	}

	product := rows[0].product()
	return &product, nil
}

func (c *RestClient) CreateProduct(ctx context.Context, product models.NewProduct) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody([]models.NewProduct{product}).
		Post("/rest/v1/products")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}

	var created []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("failed to parse create response: %w", err)
	}
	if len(created) == 0 || created[0].ID == "" {
		return "", fmt.Errorf("create response carried no id: %s", resp.Body())
	}
	return created[0].ID, nil
}

func (c *RestClient) UpdateProduct(ctx context.Context, id string, fields map[string]any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", "eq."+id).
		SetBody(fields).
		Patch("/rest/v1/products")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}

func (c *RestClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/products")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}

func (c *RestClient) InsertImage(ctx context.Context, image models.ProductImage) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]models.ProductImage{image}).
		Post("/rest/v1/product_images")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("catalog service returned %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
