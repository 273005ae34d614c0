// Package catalog implements the view-layer logic of the public catalog
// and admin forms: client-side filtering, sorting, and form validation
// over a fetched vehicle list. It renders nothing; pages consume the
// results.
package catalog

import (
	"sort"
	"strings"

	"github.com/locauto/locauto-go/internal/model"
)

// Sort modes, named after the catalog's ordering dropdown options.
const (
	SortNome       = "nome"
	SortValorMenor = "valor_menor"
	SortValorMaior = "valor_maior"
	SortAnoNovo    = "ano_novo"
	SortAnoAntigo  = "ano_antigo"
)

// AllStatuses selects every status in a Query.
const AllStatuses = "all"

// Query describes the catalog's search and filter controls.
type Query struct {
	Search string
	Status string
	Marca  string
}

// Filter returns the vehicles matching the query: a case-insensitive
// substring match on name or brand, plus exact status and brand filters.
// Empty (or "all") filter values match everything.
func Filter(vehicles []model.Vehicle, q Query) []model.Vehicle {
	result := make([]model.Vehicle, 0, len(vehicles))
	search := strings.ToLower(q.Search)

	for _, v := range vehicles {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Nome), search) &&
			!strings.Contains(strings.ToLower(v.Marca), search) {
			continue
		}
		if q.Status != "" && q.Status != AllStatuses && v.Status != q.Status {
			continue
		}
		if q.Marca != "" && q.Marca != AllStatuses && v.Marca != q.Marca {
			continue
		}
		result = append(result, v)
	}

	return result
}

// Sort orders vehicles by the given mode. Unknown modes leave the slice
// order untouched.
func Sort(vehicles []model.Vehicle, mode string) {
	switch mode {
	case SortNome:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Nome < vehicles[j].Nome
		})
	case SortValorMenor:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].ValorDiaria < vehicles[j].ValorDiaria
		})
	case SortValorMaior:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].ValorDiaria > vehicles[j].ValorDiaria
		})
	case SortAnoNovo:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Ano > vehicles[j].Ano
		})
	case SortAnoAntigo:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Ano < vehicles[j].Ano
		})
	}
}

// Brands returns the distinct brands present in the list, in first-seen
// order, for the brand filter dropdown.
func Brands(vehicles []model.Vehicle) []string {
	seen := make(map[string]bool)
	brands := []string{}

	for _, v := range vehicles {
		if !seen[v.Marca] {
			seen[v.Marca] = true
			brands = append(brands, v.Marca)
		}
	}

	return brands
}

// defaultFeatures is shown on the detail page when a vehicle has no
// feature list of its own.
var defaultFeatures = []string{
	"4 Portas",
	"Ar Condicionado",
	"Direção Hidráulica",
	"Vidros Elétricos",
	"Travas Elétricas",
	"Airbag",
	"Freios ABS",
	"Câmbio Manual",
	"Sensor de Estacionamento",
	"Combustível: Flex",
}

// Features returns the vehicle's feature list, or the fixed fallback list
// when it has none.
func Features(v *model.Vehicle) []string {
	if len(v.Caracteristicas) > 0 {
		return v.Caracteristicas
	}
	return defaultFeatures
}
