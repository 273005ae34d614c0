package catalog

import (
	"time"

	"github.com/locauto/locauto-go/internal/model"
)

// ValidateForm checks an admin add/edit form before submission, returning
// one message per failing field, keyed by field name. An empty map means
// the form is ready to submit. This mirrors the server-side checks so the
// user sees problems before the round trip.
func ValidateForm(req model.VehicleRequest) map[string]string {
	problems := make(map[string]string)

	if req.Nome == "" {
		problems["nome"] = "Nome é obrigatório"
	}
	if req.Marca == "" {
		problems["marca"] = "Marca é obrigatória"
	}
	if req.ImagemURL == "" {
		problems["imagem_url"] = "URL da imagem é obrigatória"
	}
	if req.Ano < 1900 || req.Ano > time.Now().Year()+1 {
		problems["ano"] = "Ano inválido"
	}
	if req.ValorDiaria < 0 {
		problems["valor_diaria"] = "Valor deve ser positivo"
	}
	if req.Status != "" && req.Status != model.StatusAvailable && req.Status != model.StatusUnavailable {
		problems["status"] = "Status inválido"
	}

	return problems
}
