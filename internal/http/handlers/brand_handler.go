package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
	applog "stridewear/internal/log"
	"stridewear/internal/services"
	"stridewear/internal/validate"
)

type BrandHandler struct {
	Catalog *services.CatalogService
}

type brandPayload struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	LogoURL     string `json:"logo_url"`
	BannerURL   string `json:"banner_url"`
	Description string `json:"description"`
	Visible     *bool  `json:"visible"` // defaults true when omitted
	InNavbar    bool   `json:"in_navbar"`
	Order       int    `json:"order"`
}

func (p brandPayload) toDomain() (domain.Brand, error) {
	name, ok := validate.Required(p.Name)
	if !ok {
		return domain.Brand{}, apperr.Invalid("name is required")
	}
	slug, ok := validate.Required(p.Slug)
	if !ok {
		return domain.Brand{}, apperr.Invalid("slug is required")
	}
	if _, ok := validate.Required(p.LogoURL); !ok {
		return domain.Brand{}, apperr.Invalid("logo_url is required")
	}
	if _, ok := validate.Required(p.BannerURL); !ok {
		return domain.Brand{}, apperr.Invalid("banner_url is required")
	}
	if _, ok := validate.Required(p.Description); !ok {
		return domain.Brand{}, apperr.Invalid("description is required")
	}
	visible := true
	if p.Visible != nil {
		visible = *p.Visible
	}
	return domain.Brand{
		Name:        name,
		Slug:        slug,
		LogoURL:     p.LogoURL,
		BannerURL:   p.BannerURL,
		Description: p.Description,
		Visible:     visible,
		InNavbar:    p.InNavbar,
		Order:       p.Order,
	}, nil
}

// GET /api/brands
func (h *BrandHandler) ListPublic(c *fiber.Ctx) error {
	brands, err := h.Catalog.ListBrands(c.UserContext(), false)
	if err != nil {
		return fail(c, "brands.list.fail", err)
	}
	return c.JSON(brands)
}

// GET /api/brands/all
func (h *BrandHandler) ListAll(c *fiber.Ctx) error {
	brands, err := h.Catalog.ListBrands(c.UserContext(), true)
	if err != nil {
		return fail(c, "brands.list.all.fail", err)
	}
	return c.JSON(brands)
}

// POST /api/brands
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var p brandPayload
	if err := c.BodyParser(&p); err != nil {
		return fail(c, "brands.create.fail", apperr.Invalid("invalid request body"))
	}
	b, err := p.toDomain()
	if err != nil {
		return fail(c, "brands.create.fail", err)
	}
	b, err = h.Catalog.CreateBrand(c.UserContext(), b)
	if err != nil {
		return fail(c, "brands.create.fail", err)
	}
	applog.Audit(c, "brands.create", map[string]any{"brand_id": b.ID.Hex(), "slug": b.Slug})
	return created(c, b)
}

// PUT /api/brands/:id
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "brands.update.fail", apperr.InvalidIdentifier())
	}
	var p brandPayload
	if err := c.BodyParser(&p); err != nil {
		return fail(c, "brands.update.fail", apperr.Invalid("invalid request body"))
	}
	b, err := p.toDomain()
	if err != nil {
		return fail(c, "brands.update.fail", err)
	}
	if err := h.Catalog.UpdateBrand(c.UserContext(), id, b); err != nil {
		return fail(c, "brands.update.fail", err)
	}
	applog.Audit(c, "brands.update", map[string]any{"brand_id": id.Hex()})
	return ok(c, "Brand updated successfully")
}

// DELETE /api/brands/:id
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "brands.delete.fail", apperr.InvalidIdentifier())
	}
	if err := h.Catalog.DeleteBrand(c.UserContext(), id); err != nil {
		return fail(c, "brands.delete.fail", err)
	}
	applog.Audit(c, "brands.delete", map[string]any{"brand_id": id.Hex()})
	return ok(c, "Brand deleted successfully")
}
