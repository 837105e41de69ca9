package seeders

import (
	"context"
	"log"

	"office-inventory/internal/services"
)

// SeedSections stores the default section list unless one already exists.
func SeedSections(ctx context.Context, sections *services.SectionService) error {
	log.Println("  - Seeding default sections...")
	written, err := sections.SeedDefaults(ctx)
	if err != nil {
		return err
	}
	if !written {
		log.Println("    sections already configured, skipped")
	}
	return nil
}

// SeedDemoEquipment registers a small fleet so the views have data.
// Identifiers are assigned by the regular registration path.
func SeedDemoEquipment(ctx context.Context, equipment services.EquipmentServiceInterface) error {
	log.Println("  - Registering demo equipment...")
	for _, in := range demoEquipment {
		res, err := equipment.RegisterEquipment(ctx, in)
		if err != nil {
			return err
		}
		log.Printf("    %s  %s %s", res.UniqueID, res.Brand, res.Model)
	}
	return nil
}
