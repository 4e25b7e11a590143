package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/willjrcristo/cinema-api/internal/domain"
	"github.com/willjrcristo/cinema-api/internal/repository"
)

// Erros de negócio relacionados a usuários, assinaturas e filmes.
var (
	ErrUsuarioNaoEncontrado  = errors.New("usuário não encontrado")
	ErrDadosInvalidos        = errors.New("dados do usuário inválidos")
	ErrCriacaoSessaoCheckout = errors.New("erro ao criar sessão de checkout")
	ErrWebhookStripe         = errors.New("erro ao processar webhook da stripe")
	ErrAssinaturaNecessaria  = errors.New("é necessária uma assinatura ativa para criar filmes")
	ErrDiarioObrigatorio     = errors.New("o conteúdo do diário é obrigatório")
)

// Opcoes é a configuração explícita do serviço. Substitui leituras de
// variáveis de ambiente espalhadas pelo código.
type Opcoes struct {
	// Dias de teste gratuito aplicados uniformemente a toda assinatura.
	TrialPeriodDays int64
	// Segredo usado para verificar a assinatura dos webhooks da Stripe.
	WebhookSecret string
}

// UsuarioService encapsula a lógica de negócio para usuários, assinaturas e filmes.
type UsuarioService struct {
	repo       repository.UsuarioRepository
	pagamentos PaymentSessionService
	opcoes     Opcoes
}

// NewUsuarioService cria uma nova instância do UsuarioService.
func NewUsuarioService(repo repository.UsuarioRepository, pagamentos PaymentSessionService, opcoes Opcoes) *UsuarioService {
	if opcoes.TrialPeriodDays <= 0 {
		opcoes.TrialPeriodDays = 7
	}
	return &UsuarioService{
		repo:       repo,
		pagamentos: pagamentos,
		opcoes:     opcoes,
	}
}

// --- MÉTODOS CRUD ---

func (s *UsuarioService) CreateUser(ctx context.Context, usuario domain.Usuario) (*domain.Usuario, error) {
	if usuario.Nome == "" || usuario.Email == "" {
		return nil, ErrDadosInvalidos
	}
	if !strings.Contains(usuario.Email, "@") {
		return nil, ErrDadosInvalidos
	}

	usuario.ID = uuid.NewString()
	usuario.TierAssinatura = domain.TierGratuito
	usuario.CriadoEm = time.Now().UTC()

	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) GetUserByID(ctx context.Context, id string) (*domain.Usuario, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return usuario, nil
}

func (s *UsuarioService) GetAllUsers(ctx context.Context) ([]domain.Usuario, error) {
	return s.repo.GetAll(ctx)
}

func (s *UsuarioService) UpdateUser(ctx context.Context, id string, usuario domain.Usuario) error {
	if usuario.Nome == "" || usuario.Email == "" {
		return ErrDadosInvalidos
	}
	_, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, usuario)
}

func (s *UsuarioService) DeleteUser(ctx context.Context, id string) error {
	_, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// --- PERFIL E ENTITLEMENTS ---

// AtualizarPerfil re-busca o registro do usuário no diretório. É o que a
// tela de sucesso do pagamento chama para tentar enxergar a assinatura
// que o webhook da Stripe grava de forma assíncrona.
func (s *UsuarioService) AtualizarPerfil(ctx context.Context, usuarioID string) (*domain.Usuario, error) {
	return s.GetUserByID(ctx, usuarioID)
}

// CriarFilme valida o entitlement no servidor e devolve o registro do
// filme. O pipeline de geração em si é um colaborador externo: aqui ele
// é representado por um registro sintético já concluído.
func (s *UsuarioService) CriarFilme(ctx context.Context, usuarioID, titulo, diario string) (*domain.Filme, error) {
	if diario == "" {
		return nil, ErrDiarioObrigatorio
	}

	usuario, err := s.GetUserByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	// A checagem que vale é esta, no momento do uso. O que a tela de
	// sucesso exibiu depois do checkout pode estar defasado.
	if !usuario.PodeCriarFilme() {
		return nil, ErrAssinaturaNecessaria
	}

	filme := &domain.Filme{
		ID:        uuid.NewString(),
		UsuarioID: usuario.ID,
		Titulo:    titulo,
		Diario:    diario,
		Status:    domain.StatusFilmeConcluido,
		CriadoEm:  time.Now().UTC(),
	}
	slog.Info("🎬 Filme criado", "filme_id", filme.ID, "usuario_id", usuario.ID)
	return filme, nil
}
