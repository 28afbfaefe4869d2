package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
	applog "stridewear/internal/log"
	"stridewear/internal/services"
	"stridewear/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type productPayload struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

func (p productPayload) toDomain() (domain.Product, error) {
	name, ok := validate.Required(p.Name)
	if !ok {
		return domain.Product{}, apperr.Invalid("name is required")
	}
	brand, ok := validate.Required(p.Brand)
	if !ok {
		return domain.Product{}, apperr.Invalid("brand is required")
	}
	category, ok := validate.Required(p.Category)
	if !ok {
		return domain.Product{}, apperr.Invalid("category is required")
	}
	if _, ok := validate.Required(p.Description); !ok {
		return domain.Product{}, apperr.Invalid("description is required")
	}
	if p.Images == nil {
		return domain.Product{}, apperr.Invalid("images is required")
	}
	return domain.Product{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Description: p.Description,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Status:      p.Status,
		Featured:    p.Featured,
	}, nil
}

// GET /api/products?brand=&category=&search=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(c.UserContext(),
		c.Query("brand"), c.Query("category"), c.Query("search"))
	if err != nil {
		return fail(c, "products.list.fail", err)
	}
	return c.JSON(products)
}

// GET /api/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "products.get.fail", apperr.InvalidIdentifier())
	}
	p, err := h.Catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.get.fail", err)
	}
	return c.JSON(p)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var pl productPayload
	if err := c.BodyParser(&pl); err != nil {
		return fail(c, "products.create.fail", apperr.Invalid("invalid request body"))
	}
	p, err := pl.toDomain()
	if err != nil {
		return fail(c, "products.create.fail", err)
	}
	p, err = h.Catalog.CreateProduct(c.UserContext(), p)
	if err != nil {
		return fail(c, "products.create.fail", err)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID.Hex(), "name": p.Name})
	return created(c, p)
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "products.update.fail", apperr.InvalidIdentifier())
	}
	var pl productPayload
	if err := c.BodyParser(&pl); err != nil {
		return fail(c, "products.update.fail", apperr.Invalid("invalid request body"))
	}
	p, err := pl.toDomain()
	if err != nil {
		return fail(c, "products.update.fail", err)
	}
	if err := h.Catalog.UpdateProduct(c.UserContext(), id, p); err != nil {
		return fail(c, "products.update.fail", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id.Hex()})
	return ok(c, "Product updated successfully")
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "products.delete.fail", apperr.InvalidIdentifier())
	}
	if err := h.Catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return fail(c, "products.delete.fail", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id.Hex()})
	return ok(c, "Product deleted successfully")
}
