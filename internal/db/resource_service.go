package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/models"
	"github.com/balkashynov/tinct/internal/parser"
)

// ErrColorNotFound is returned when a resource ID or name does not exist.
var ErrColorNotFound = errors.New("color resource not found")

// CreateColorRequest holds the data needed to create a new color resource
type CreateColorRequest struct {
	Name string
	Hex  string
	Note string
}

// CreateColor validates and stores a new color resource
func (c *Catalog) CreateColor(req CreateColorRequest) (*models.ColorResource, error) {
	name, err := parser.NormalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	// Only fixed colors are stored; parse to validate and canonicalize
	value, err := colors.ParseHex(req.Hex)
	if err != nil {
		return nil, err
	}

	res := models.ColorResource{
		Name: name,
		Hex:  value.Hex(),
		Note: strings.TrimSpace(req.Note),
	}
	if err := c.db.Create(&res).Error; err != nil {
		return nil, fmt.Errorf("create color %q: %w", name, err)
	}
	return &res, nil
}

// GetColors retrieves all color resources ordered by ID
func (c *Catalog) GetColors() ([]models.ColorResource, error) {
	var out []models.ColorResource
	err := c.db.Order("id ASC").Find(&out).Error
	return out, err
}

// DeleteColor removes a color resource
func (c *Catalog) DeleteColor(id uint) (*models.ColorResource, error) {
	var res models.ColorResource
	if err := c.db.First(&res, id).Error; err != nil {
		return nil, fmt.Errorf("color #%d: %w", id, ErrColorNotFound)
	}
	// hard delete so the name can be reused
	if err := c.db.Unscoped().Delete(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// Color resolves a resource ID to its value. It is the explicit-override
// resolver handed to widgets.
func (c *Catalog) Color(id int) (colors.Color, error) {
	if id <= 0 {
		return 0, fmt.Errorf("color #%d: %w", id, ErrColorNotFound)
	}
	var res models.ColorResource
	err := c.db.First(&res, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("color #%d: %w", id, ErrColorNotFound)
	}
	if err != nil {
		return 0, err
	}
	return colors.ParseHex(res.Hex)
}

// LookupRef maps an attribute reference (@color/name or @id) to a resource
// ID. It is the lookup passed to attr.Extract.
func (c *Catalog) LookupRef(ref string) (int, error) {
	r, err := parser.ParseRef(ref)
	if err != nil {
		return 0, err
	}
	if !r.ByName() {
		var count int64
		if err := c.db.Model(&models.ColorResource{}).Where("id = ?", r.ID).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, fmt.Errorf("%s: %w", r, ErrColorNotFound)
		}
		return r.ID, nil
	}

	var res models.ColorResource
	err = c.db.Where("name = ?", r.Name).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%s: %w", r, ErrColorNotFound)
	}
	if err != nil {
		return 0, err
	}
	return int(res.ID), nil
}

// SeedDefaults creates the named colors the demo references, skipping any
// that already exist.
func (c *Catalog) SeedDefaults() error {
	defaults := []CreateColorRequest{
		{Name: "brand", Hex: "#112233", Note: "explicit label color"},
		{Name: "warning", Hex: "#F59E0B"},
		{Name: "success", Hex: "#22C55E"},
	}
	for _, req := range defaults {
		var count int64
		if err := c.db.Model(&models.ColorResource{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := c.CreateColor(req); err != nil {
			return err
		}
	}
	return nil
}
