package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/locauto/locauto-go/internal/model"
)

// sampleVehicles is the starter catalog inserted into an empty store so a
// fresh deployment has something to show.
var sampleVehicles = []model.Vehicle{
	{
		Nome:        "Toyota Corolla",
		Marca:       "Toyota",
		Ano:         2022,
		ValorDiaria: 150.00,
		Status:      model.StatusAvailable,
		ImagemURL:   "https://images.pexels.com/photos/170811/pexels-photo-170811.jpeg",
		Descricao:   "Sedan confortável com excelente consumo de combustível.",
	},
	{
		Nome:        "Honda Civic",
		Marca:       "Honda",
		Ano:         2021,
		ValorDiaria: 140.00,
		Status:      model.StatusAvailable,
		ImagemURL:   "https://images.pexels.com/photos/1149831/pexels-photo-1149831.jpeg",
		Descricao:   "Sedan esportivo com design moderno.",
	},
	{
		Nome:        "Volkswagen Golf",
		Marca:       "Volkswagen",
		Ano:         2020,
		ValorDiaria: 120.00,
		Status:      model.StatusUnavailable,
		ImagemURL:   "https://images.pexels.com/photos/1592384/pexels-photo-1592384.jpeg",
		Descricao:   "Hatchback compacto com tecnologia de ponta.",
	},
	{
		Nome:        "Ford Ranger",
		Marca:       "Ford",
		Ano:         2023,
		ValorDiaria: 200.00,
		Status:      model.StatusAvailable,
		ImagemURL:   "https://images.pexels.com/photos/2676330/pexels-photo-2676330.jpeg",
		Descricao:   "Picape robusta para trabalho e lazer.",
	},
	{
		Nome:        "Jeep Compass",
		Marca:       "Jeep",
		Ano:         2022,
		ValorDiaria: 180.00,
		Status:      model.StatusAvailable,
		ImagemURL:   "https://images.pexels.com/photos/116675/pexels-photo-116675.jpeg",
		Descricao:   "SUV com tração 4x4 e interior espaçoso.",
	},
	{
		Nome:        "Fiat Strada",
		Marca:       "Fiat",
		Ano:         2021,
		ValorDiaria: 110.00,
		Status:      model.StatusUnavailable,
		ImagemURL:   "https://images.pexels.com/photos/210019/pexels-photo-210019.jpeg",
		Descricao:   "Picape compacta para uso urbano.",
	},
}

// Seed inserts the sample catalog when the store is empty. It never
// overwrites existing records.
func Seed(ctx context.Context, store VehicleStore) error {
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, v := range sampleVehicles {
		v.CreatedAt = time.Now().UTC()
		if err := store.Create(ctx, &v); err != nil {
			return err
		}
	}

	slog.Info("sample vehicles inserted", "count", len(sampleVehicles))
	return nil
}
