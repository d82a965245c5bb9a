package catalog

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/byobox/internal/domain"
)

// MapCatalog validates a decoded catalog file and maps it into the domain model.
func MapCatalog(path string, yc yamlCatalog) (domain.Catalog, error) {
	if strings.TrimSpace(yc.Name) == "" {
		return domain.Catalog{}, invalidField(path, "name", "catalog name is required")
	}
	if len(yc.Boxes) == 0 {
		return domain.Catalog{}, invalidField(path, "boxes", "at least one box is required")
	}

	cat := domain.Catalog{
		Name:  strings.TrimSpace(yc.Name),
		Path:  path,
		Boxes: make([]domain.Box, 0, len(yc.Boxes)),
	}

	seenBoxes := map[string]bool{}
	for i, yb := range yc.Boxes {
		field := fmt.Sprintf("boxes[%d]", i)
		box, err := mapBox(path, field, yb)
		if err != nil {
			return domain.Catalog{}, err
		}

		key := strings.ToLower(box.Name)
		if seenBoxes[key] {
			return domain.Catalog{}, invalidField(path, field+".name", fmt.Sprintf("duplicate box name %q", box.Name))
		}
		seenBoxes[key] = true

		cat.Boxes = append(cat.Boxes, box)
	}

	return cat, nil
}

func mapBox(path, field string, yb yamlBox) (domain.Box, error) {
	name := strings.TrimSpace(yb.Name)
	if name == "" {
		return domain.Box{}, invalidField(path, field+".name", "box name is required")
	}

	fee, err := ParsePrice(yb.Fee)
	if err != nil {
		return domain.Box{}, invalidField(path, field+".fee", err.Error())
	}
	if fee.IsNegative() {
		return domain.Box{}, invalidField(path, field+".fee", "fee cannot be negative")
	}

	box := domain.Box{
		Name:        name,
		Description: strings.TrimSpace(yb.Description),
		Image:       strings.TrimSpace(yb.Image),
		Fee:         fee,
		Categories:  make([]domain.Category, 0, len(yb.Categories)),
	}

	seen := map[string]bool{}
	for j, yc := range yb.Categories {
		cf := fmt.Sprintf("%s.categories[%d]", field, j)
		c, err := mapCategory(path, cf, yc)
		if err != nil {
			return domain.Box{}, err
		}
		if seen[c.ID] {
			return domain.Box{}, invalidField(path, cf+".id", fmt.Sprintf("duplicate category id %q", c.ID))
		}
		seen[c.ID] = true
		box.Categories = append(box.Categories, c)
	}

	return box, nil
}

func mapCategory(path, field string, yc yamlCategory) (domain.Category, error) {
	id := strings.TrimSpace(yc.ID)
	if id == "" {
		return domain.Category{}, invalidField(path, field+".id", "category id is required")
	}

	min, max := ParseLimits(yc.Limits)
	if yc.Min != nil {
		min = *yc.Min
	}
	if yc.Max != nil {
		max = *yc.Max
	}
	if min < 0 || max < 0 {
		return domain.Category{}, invalidField(path, field+".limits", "limits cannot be negative")
	}
	if max < min {
		return domain.Category{}, invalidField(path, field+".limits", fmt.Sprintf("max %d is below min %d", max, min))
	}

	name := strings.TrimSpace(yc.Name)
	if name == "" {
		name = id
	}

	c := domain.Category{
		ID:              id,
		Name:            name,
		Min:             min,
		Max:             max,
		Optional:        yc.Optional || min == 0,
		AllowDuplicates: categoryAllowsDuplicates(yc),
		Products:        make([]domain.Product, 0, len(yc.Products)),
	}

	seen := map[string]bool{}
	for k, yp := range yc.Products {
		pf := fmt.Sprintf("%s.products[%d]", field, k)

		pid := strings.TrimSpace(yp.ID)
		if pid == "" {
			return domain.Category{}, invalidField(path, pf+".id", "product id is required")
		}
		if seen[pid] {
			return domain.Category{}, invalidField(path, pf+".id", fmt.Sprintf("duplicate product id %q", pid))
		}
		seen[pid] = true

		price, err := ParsePrice(yp.Price)
		if err != nil {
			return domain.Category{}, invalidField(path, pf+".price", err.Error())
		}
		if price.IsNegative() {
			return domain.Category{}, invalidField(path, pf+".price", "price cannot be negative")
		}

		allow := c.AllowDuplicates
		if yp.AllowDuplicates != nil {
			allow = *yp.AllowDuplicates
		}

		title := strings.TrimSpace(yp.Title)
		if title == "" {
			title = pid
		}

		c.Products = append(c.Products, domain.Product{
			ID:              pid,
			VariantID:       strings.TrimSpace(yp.VariantID),
			Title:           title,
			Image:           strings.TrimSpace(yp.Image),
			Price:           price,
			AllowDuplicates: allow,
		})
	}

	return c, nil
}

// categoryAllowsDuplicates: explicit category flag, else the first product's flag.
func categoryAllowsDuplicates(yc yamlCategory) bool {
	if yc.AllowDuplicates != nil {
		return *yc.AllowDuplicates
	}
	if len(yc.Products) > 0 && yc.Products[0].AllowDuplicates != nil {
		return *yc.Products[0].AllowDuplicates
	}
	return false
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "catalog.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
