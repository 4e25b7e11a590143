// Package ativacao implementa os dois desfechos de uma tentativa de
// checkout: a reconciliação otimista do perfil no caminho de sucesso e
// a apresentação estática do caminho de cancelamento.
package ativacao

import (
	"context"
	"log/slog"
	"time"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

// Estado da reconciliação pós-pagamento.
type Estado string

const (
	// EstadoPendente: acabamos de receber o redirect do provedor.
	EstadoPendente Estado = "pendente"
	// EstadoReconciliado: o perfil foi re-buscado com sucesso e é ele
	// que respalda as flags exibidas.
	EstadoReconciliado Estado = "reconciliado"
	// EstadoExibicaoPorTimeout: exibimos a confirmação com o perfil em
	// cache, porque o refresh não resolveu dentro do teto (ou nem foi
	// tentado). Não é um erro: o redirect de sucesso já é evidência
	// suficiente de que a cobrança passou.
	EstadoExibicaoPorTimeout Estado = "exibicao_por_timeout"
)

// TetoPadrao é o tempo máximo entre a entrada na tela de sucesso e um
// estado exibível. O webhook que atualiza o perfil pode demorar mais do
// que isso; o usuário não fica esperando por ele.
const TetoPadrao = 1500 * time.Millisecond

// PerfilRefresher re-busca o perfil do usuário no diretório de contas.
type PerfilRefresher interface {
	AtualizarPerfil(ctx context.Context, usuarioID string) (*domain.Usuario, error)
}

// Resultado é o estado terminal da reconciliação. Ambos os estados
// exibíveis renderizam a mesma confirmação de sucesso; a diferença é só
// qual snapshot do perfil respalda os entitlements mostrados.
type Resultado struct {
	Estado Estado
	// Perfil recém-buscado, ou nil quando a exibição fica com o cache.
	Perfil *domain.Usuario
}

// Exibivel informa se a tela já pode sair do indicador de carregamento.
func (r Resultado) Exibivel() bool {
	return r.Estado != EstadoPendente
}

// Reconciliador executa a reconciliação com espera limitada.
type Reconciliador struct {
	perfil PerfilRefresher
	teto   time.Duration
}

// NewReconciliador cria o reconciliador. Um teto <= 0 usa o TetoPadrao.
func NewReconciliador(perfil PerfilRefresher, teto time.Duration) *Reconciliador {
	if teto <= 0 {
		teto = TetoPadrao
	}
	return &Reconciliador{perfil: perfil, teto: teto}
}

// Executar roda a máquina de estados a partir da entrada na tela de
// sucesso e retorna um estado exibível em no máximo um teto de espera.
//
// A referência de sessão vinda do redirect é opcional: o provedor não
// garante a sua presença em todo formato de redirect, e a ausência não
// é tratada como erro (só pulamos o refresh).
func (r *Reconciliador) Executar(ctx context.Context, usuarioID, referenciaSessao string) Resultado {
	if referenciaSessao == "" || usuarioID == "" {
		return Resultado{Estado: EstadoExibicaoPorTimeout}
	}

	type resposta struct {
		perfil *domain.Usuario
		err    error
	}
	// Buffer de 1 para a goroutine não vazar se o teto vencer primeiro.
	ch := make(chan resposta, 1)
	go func() {
		p, err := r.perfil.AtualizarPerfil(ctx, usuarioID)
		ch <- resposta{perfil: p, err: err}
	}()

	timer := time.NewTimer(r.teto)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			// Engolido de propósito: a UI é otimista e o redirect já é o
			// sinal de sucesso. Só ficamos sem o perfil fresco.
			slog.Error("Falha ao atualizar o perfil após o pagamento", "error", res.err, "usuario_id", usuarioID)
			return Resultado{Estado: EstadoExibicaoPorTimeout}
		}
		return Resultado{Estado: EstadoReconciliado, Perfil: res.perfil}
	case <-timer.C:
		return Resultado{Estado: EstadoExibicaoPorTimeout}
	case <-ctx.Done():
		return Resultado{Estado: EstadoExibicaoPorTimeout}
	}
}
