package catalog

func int64p(v int64) *int64 { return &v }

// DefaultCatalog is the hardcoded product list served whenever the remote
// catalog cannot be read or comes back empty. It mirrors the launch
// inventory so the storefront is never blank.
func DefaultCatalog() []*Product {
	return []*Product{
		{
			ID:           "w-poedagar-magnate-square",
			Name:         "POEDAGAR MAGNATE SQUARE",
			Brand:        "Poedagar",
			Category:     CategoryWatches,
			Price:        290000,
			OfferPrice:   int64p(260000),
			Description:  "Elegancia contemporánea con caja cuadrada y acabado dorado integral. Movimiento de cuarzo de alta fidelidad, agujas luminiscentes, fechador automático, resistencia al agua 3ATM. Diámetro 40mm.",
			Image:        "https://placehold.co/600x600/FFFFFF/000000?text=Magnate+Square",
			IsStock:      true,
			IsVisible:    true,
			IsBestSeller: true,
		},
		{
			ID:          "w-poedagar-imperial-steel",
			Name:        "POEDAGAR IMPERIAL STEEL",
			Brand:       "Poedagar",
			Category:    CategoryWatches,
			Price:       290000,
			OfferPrice:  int64p(260000),
			Description: "Construcción robusta en acero pulido y diseño cuadrado. Visualización de fecha, manecillas con brillo nocturno, sellado hermético. Correa de acero inoxidable plateado. Diámetro 40mm.",
			Image:       "https://placehold.co/600x600/FFFFFF/000000?text=Imperial+Steel",
			IsStock:     true,
			IsVisible:   true,
		},
		{
			ID:          "w-poedagar-legacy-leather",
			Name:        "POEDAGAR LEGACY LEATHER",
			Brand:       "Poedagar",
			Category:    CategoryWatches,
			Price:       270000,
			OfferPrice:  int64p(240000),
			Description: "Caja geométrica con correa de cuero legítimo. Calendario funcional, punteros luminosos, diseño ergonómico. Cristal mineral resistente a impactos. Diámetro 40mm.",
			Image:       "https://placehold.co/600x600/FFFFFF/000000?text=Legacy+Leather",
			IsStock:     true,
			IsVisible:   true,
		},
		{
			ID:           "w-poedagar-avant-garde",
			Name:         "POEDAGAR AVANT-GARDE CHRONO",
			Brand:        "Poedagar",
			Category:     CategoryWatches,
			Price:        300000,
			OfferPrice:   int64p(270000),
			Description:  "Esfera compleja con sub-diales funcionales inspirados en la alta competición. Cronógrafo funcional, fechador, resistencia al agua, alta luminosidad. Acero inoxidable. Diámetro 42mm.",
			Image:        "https://placehold.co/600x600/FFFFFF/000000?text=Avant+Garde",
			IsStock:      true,
			IsVisible:    true,
			IsBestSeller: true,
		},
		{
			ID:                "p1",
			Name:              "Sauvage Elixir",
			Brand:             "Dior",
			Category:          CategoryPerfumes,
			SubCategory:       PerfumeDesigner,
			Price:             1200000,
			Description:       "Una concentración extrema. Notas de pomelo, especias, lavanda orgánica y maderas.",
			Image:             "https://placehold.co/600x600/FFFFFF/000000?text=Sauvage",
			IsStock:           true,
			IsVisible:         true,
			IsBestSeller:      true,
			IsDecantAvailable: true,
			DecantPrice3ml:    int64p(80000),
			DecantPrice5ml:    int64p(120000),
			DecantPrice10ml:   int64p(220000),
		},
		{
			ID:                "p2",
			Name:              "Bleu de Chanel Parfum",
			Brand:             "Chanel",
			Category:          CategoryPerfumes,
			SubCategory:       PerfumeDesigner,
			Price:             1350000,
			Description:       "Un aromático amaderado intensamente masculino.",
			Image:             "https://placehold.co/600x600/FFFFFF/000000?text=Bleu+Chanel",
			IsStock:           true,
			IsVisible:         true,
			IsDecantAvailable: true,
			DecantPrice3ml:    int64p(90000),
			DecantPrice5ml:    int64p(135000),
			DecantPrice10ml:   int64p(250000),
		},
		{
			ID:          "p3",
			Name:        "Club de Nuit Intense Man",
			Brand:       "Armaf",
			Category:    CategoryPerfumes,
			SubCategory: PerfumeArab,
			Price:       450000,
			OfferPrice:  int64p(380000),
			Description: "Una fragancia amaderada especiada conocida por su excelente proyección.",
			Image:       "https://placehold.co/600x600/FFFFFF/000000?text=CDNIM",
			IsStock:     true,
			IsVisible:   true,
		},
		{
			ID:                "p4",
			Name:              "Khamrah",
			Brand:             "Lattafa",
			Category:          CategoryPerfumes,
			SubCategory:       PerfumeArab,
			Price:             550000,
			Description:       "Dulce, cálido y especiado. Notas de canela, nuez moscada y dátiles.",
			Image:             "https://placehold.co/600x600/FFFFFF/000000?text=Khamrah",
			IsStock:           true,
			IsVisible:         true,
			IsBestSeller:      true,
			IsDecantAvailable: true,
			DecantPrice3ml:    int64p(35000),
			DecantPrice5ml:    int64p(55000),
			DecantPrice10ml:   int64p(95000),
		},
		{
			ID:                "p5",
			Name:              "Aventus",
			Brand:             "Creed",
			Category:          CategoryPerfumes,
			SubCategory:       PerfumeNiche,
			Price:             2800000,
			Description:       "La fragancia nicho más celebrada. Piña, abedul y almizcle.",
			Image:             "https://placehold.co/600x600/FFFFFF/000000?text=Aventus",
			IsStock:           true,
			IsVisible:         true,
			IsDecantAvailable: true,
			DecantPrice3ml:    int64p(180000),
			DecantPrice5ml:    int64p(280000),
			DecantPrice10ml:   int64p(520000),
		},
		{
			ID:                "p6",
			Name:              "Baccarat Rouge 540",
			Brand:             "Maison Francis Kurkdjian",
			Category:          CategoryPerfumes,
			SubCategory:       PerfumeNiche,
			Price:             3200000,
			Description:       "Luminoso y sofisticado. Jazmín, azafrán, ámbar gris y cedro.",
			Image:             "https://placehold.co/600x600/FFFFFF/000000?text=Baccarat",
			IsStock:           true,
			IsVisible:         true,
			IsDecantAvailable: true,
			DecantPrice3ml:    int64p(200000),
			DecantPrice5ml:    int64p(320000),
			DecantPrice10ml:   int64p(600000),
		},
	}
}
