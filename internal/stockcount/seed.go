package stockcount

// DefaultSeed returns the fixture the service boots with: three store
// locations, four merchandising categories, and four counts already in
// progress. State is process-local and rebuilt from this seed on restart.
func DefaultSeed() Seed {
	baldock := Location{ID: 1, Name: "Baldock"}
	hitchin := Location{ID: 2, Name: "Hitchin"}
	letchworth := Location{ID: 3, Name: "Letchworth"}

	womens := ProductCategory{ID: 1, Code: "H71", Name: "Womens"}
	mens := ProductCategory{ID: 2, Code: "H72", Name: "Mens"}
	childrens := ProductCategory{ID: 3, Code: "H73", Name: "Childrens"}
	home := ProductCategory{ID: 4, Code: "H74", Name: "Home"}

	return Seed{
		Locations:  []Location{baldock, hitchin, letchworth},
		Categories: []ProductCategory{womens, mens, childrens, home},
		Counts: []StockCount{
			{ID: 1, Description: "Baldock - Womens", Location: baldock, Category: womens},
			{ID: 2, Description: "Hitchin - Mens", Location: hitchin, Category: mens},
			{ID: 3, Description: "Baldock - Mens", Location: baldock, Category: mens},
			{ID: 4, Description: "Letchworth - Womens", Location: letchworth, Category: womens},
		},
	}
}
