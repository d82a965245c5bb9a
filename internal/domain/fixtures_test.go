package domain

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// snackBox: chips 2..3 (duplicates ok), drink exactly 1 (no duplicates), extras optional 0..2.
func snackBox() Box {
	return Box{
		Name: "Snack Box",
		Fee:  price("4.99"),
		Categories: []Category{
			{
				ID: "chips", Name: "Chips", Min: 2, Max: 3, AllowDuplicates: true,
				Products: []Product{
					{ID: "salt", VariantID: "1001", Title: "Sea Salt", Price: price("5.00"), AllowDuplicates: true},
					{ID: "bbq", VariantID: "1002", Title: "BBQ", Price: price("5.50"), AllowDuplicates: true},
				},
			},
			{
				ID: "drink", Name: "Drinks", Min: 1, Max: 1,
				Products: []Product{
					{ID: "cola", VariantID: "2001", Title: "Cola", Price: price("2.25")},
					{ID: "tea", VariantID: "2002", Title: "Iced Tea", Price: price("2.75")},
				},
			},
			{
				ID: "extra", Name: "Extras", Min: 0, Max: 2, Optional: true,
				Products: []Product{
					{ID: "mint", VariantID: "", Title: "Mint", Price: price("1.00")},
					{ID: "gum", VariantID: "3002", Title: "Gum", Price: price("0.75")},
				},
			},
		},
	}
}
