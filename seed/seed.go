// Package seed provides the initial site content embedded in the binary.
package seed

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"medivance-backend/company"
	"medivance-backend/models"
)

//go:embed data/*.yaml
var files embed.FS

// Data is the full initial content of the site.
type Data struct {
	Products []models.Product
	Messages []models.ContactMessage
	Company  company.Profile
	Featured []models.FeaturedSlide
}

// Load decodes every embedded seed file.
func Load() (*Data, error) {
	var d Data
	for name, out := range map[string]any{
		"data/products.yaml": &d.Products,
		"data/messages.yaml": &d.Messages,
		"data/company.yaml":  &d.Company,
		"data/featured.yaml": &d.Featured,
	} {
		if err := decode(name, out); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func decode(name string, out any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode seed %s: %w", name, err)
	}
	return nil
}
