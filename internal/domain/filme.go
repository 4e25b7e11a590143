package domain

import "time"

// Status possíveis de um filme.
const (
	StatusFilmeProcessando = "processando"
	StatusFilmeConcluido   = "concluido"
)

// Filme é o registro devolvido pelo endpoint de criação de filmes.
// A geração de verdade acontece em um pipeline externo; aqui só nos
// interessa que ele é invocado depois da checagem de entitlement.
type Filme struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario_id"`
	Titulo    string    `json:"titulo"`
	Diario    string    `json:"diario"`
	Status    string    `json:"status"`
	CriadoEm  time.Time `json:"criado_em"`
}
