package postgres

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// Catálogo de demostración que se siembra una única vez cuando la base llega
// vacía (productos Y categorías sin filas). Mantenerlo chico: es un arranque
// de cortesía para un comercio nuevo, no un fixture de pruebas.

var demoCategories = []string{
	"Raw Material", "Chairs", "Tables", "Wardrobes", "Office Furniture", "Home Utility", "Home Furniture",
}

func demoProducts() []entity.Product {
	mk := func(id, name, category, label string, buy, sell int64) entity.Product {
		return entity.Product{
			ID:                id,
			Name:              name,
			Category:          category,
			Image:             "https://placehold.co/400x400/e2e8f0/1e293b?text=" + label,
			BasePurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(buy)),
			BaseSellingPrice:  decimal.NewNullDecimal(decimal.NewFromInt(sell)),
		}
	}
	return []entity.Product{
		mk("p1", "SS Round Pipe 202", "Raw Material", "SS+Pipe", 120, 180),
		mk("p2", "SS Square Pipe 304", "Raw Material", "Square+Pipe", 250, 320),
		mk("p3", "Executive Office Chair", "Chairs", "Office+Chair", 2500, 4500),
		mk("p4", "Visitor Staff Chair", "Chairs", "Visitor+Chair", 1200, 2200),
		mk("p5", "Steel Almirah (Triveni)", "Wardrobes", "Almirah", 6000, 9500),
		mk("p6", "Folding Dining Table", "Tables", "Folding+Table", 1500, 2400),
		mk("p7", "SS 3-Seater Bench", "Office Furniture", "Waiting+Bench", 3500, 5800),
		mk("p8", "Center Table (Fancy)", "Tables", "Center+Table", 2800, 4500),
		mk("p9", "Shoe Rack", "Home Utility", "Shoe+Rack", 800, 1500),
		mk("p10", "Queen Size SS Bed", "Home Furniture", "SS+Bed", 5000, 8500),
	}
}

func demoVariations() []entity.Variation {
	mk := func(id, productID, name string, stock int, buy, sell int64, color string) entity.Variation {
		return entity.Variation{
			ID:            id,
			ProductID:     productID,
			Name:          name,
			Stock:         stock,
			PurchasePrice: decimal.NewFromInt(buy),
			SellingPrice:  decimal.NewFromInt(sell),
			Color:         color,
		}
	}
	return []entity.Variation{
		mk("v1", "p1", "19mm (3/4 inch)", 500, 120, 180, "#C0C0C0"),
		mk("v2", "p1", "25mm (1 inch)", 300, 180, 250, "#C0C0C0"),
		mk("v3", "p2", "1x1 inch", 200, 250, 320, "#A9A9A9"),
		mk("v4", "p2", "1.5x1.5 inch", 150, 380, 480, "#A9A9A9"),
		mk("v5", "p3", "High Back (Black)", 15, 2500, 4500, "#000000"),
		mk("v6", "p3", "High Back (Brown)", 8, 2500, 4500, "#8B4513"),
		mk("v7", "p4", "Mesh Back Standard", 40, 1200, 2200, "#000000"),
		mk("v8", "p5", "6x3 ft Mirror Door", 5, 6000, 9500, "#708090"),
		mk("v9", "p5", "6x4 ft Full Safe", 3, 8000, 12500, "#8B4513"),
		mk("v10", "p6", "4x2 ft Plywood Top", 20, 1500, 2400, "#DEB887"),
		mk("v11", "p6", "4x2 ft SS Top", 12, 2200, 3500, "#C0C0C0"),
		mk("v12", "p7", "Perforated Steel", 10, 3500, 5800, "#C0C0C0"),
		mk("v13", "p7", "Cushion Seat", 4, 4500, 7200, "#000080"),
		mk("v14", "p8", "Glass Top Gold", 8, 2800, 4500, "#FFD700"),
		mk("v15", "p9", "4 Layer Steel", 25, 800, 1500, "#C0C0C0"),
		mk("v16", "p9", "5 Layer Steel", 15, 1000, 1800, "#C0C0C0"),
		mk("v17", "p10", "5x6 ft Pipe Frame", 2, 5000, 8500, "#C0C0C0"),
		mk("v18", "p10", "6x6 ft Heavy Duty", 2, 7000, 12000, "#C0C0C0"),
	}
}
