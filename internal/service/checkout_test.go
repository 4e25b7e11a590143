package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

// --- Mock do Repositório ---

type mockRepo struct {
	GetByIDFn               func(ctx context.Context, id string) (*domain.Usuario, error)
	CreateFn                func(ctx context.Context, u domain.Usuario) error
	GetByStripeCustomerIDFn func(ctx context.Context, id string) (*domain.Usuario, error)
	UpdateAssinaturaFn      func(ctx context.Context, id string, u domain.Usuario) error
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockRepo) Create(ctx context.Context, u domain.Usuario) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *mockRepo) GetAll(ctx context.Context) ([]domain.Usuario, error) { return nil, nil }

func (m *mockRepo) Update(ctx context.Context, id string, u domain.Usuario) error { return nil }
func (m *mockRepo) UpdateAssinatura(ctx context.Context, id string, u domain.Usuario) error {
	if m.UpdateAssinaturaFn != nil {
		return m.UpdateAssinaturaFn(ctx, id, u)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error { return nil }

func (m *mockRepo) GetByStripeCustomerID(ctx context.Context, id string) (*domain.Usuario, error) {
	if m.GetByStripeCustomerIDFn != nil {
		return m.GetByStripeCustomerIDFn(ctx, id)
	}
	return nil, nil
}

// --- Mock do provedor de pagamento ---

type mockPagamentos struct {
	chamadas      int
	ultimoParams  *stripe.CheckoutSessionParams
	CriarSessaoFn func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func (m *mockPagamentos) CriarSessao(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	m.chamadas++
	m.ultimoParams = params
	if m.CriarSessaoFn != nil {
		return m.CriarSessaoFn(params)
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/cs_test_123"}, nil
}

func requisicaoValida() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		PriceID:    "price_creator_monthly",
		UsuarioID:  "u1",
		Email:      "a@b.com",
		SuccessURL: "https://x/success",
		CancelURL:  "https://x/cancel",
	}
}

func usuarioExistente() *domain.Usuario {
	return &domain.Usuario{ID: "u1", Nome: "Teste", Email: "a@b.com", TierAssinatura: domain.TierGratuito}
}

func TestCriarSessaoCheckout(t *testing.T) {
	t.Run("usuário inexistente - não chama o provedor", func(t *testing.T) {
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return nil, nil
			},
		}
		pagamentos := &mockPagamentos{}
		svc := NewUsuarioService(repo, pagamentos, Opcoes{})

		_, err := svc.CriarSessaoCheckout(context.Background(), requisicaoValida())

		assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
		assert.Equal(t, 0, pagamentos.chamadas)
	})

	t.Run("falha no diretório também vira não encontrado, sem chamada ao provedor", func(t *testing.T) {
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return nil, errors.New("diretório fora do ar")
			},
		}
		pagamentos := &mockPagamentos{}
		svc := NewUsuarioService(repo, pagamentos, Opcoes{})

		_, err := svc.CriarSessaoCheckout(context.Background(), requisicaoValida())

		assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
		assert.Equal(t, 0, pagamentos.chamadas)
	})

	t.Run("metadados carregam o userId nos dois níveis", func(t *testing.T) {
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return usuarioExistente(), nil
			},
		}
		pagamentos := &mockPagamentos{}
		svc := NewUsuarioService(repo, pagamentos, Opcoes{})

		sessao, err := svc.CriarSessaoCheckout(context.Background(), requisicaoValida())
		require.NoError(t, err)
		assert.Equal(t, "cs_test_123", sessao.ID)

		params := pagamentos.ultimoParams
		require.NotNil(t, params)
		// Nível da sessão: é o que o webhook de checkout.session.completed lê.
		assert.Equal(t, "u1", params.Metadata["userId"])
		// Nível da assinatura: é o que os eventos de cobrança posteriores referenciam.
		require.NotNil(t, params.SubscriptionData)
		assert.Equal(t, "u1", params.SubscriptionData.Metadata["userId"])
	})

	t.Run("trial é sempre de 7 dias, independente do plano", func(t *testing.T) {
		for _, priceID := range []string{"price_creator_monthly", "price_pro_monthly", "price_qualquer"} {
			repo := &mockRepo{
				GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
					return usuarioExistente(), nil
				},
			}
			pagamentos := &mockPagamentos{}
			svc := NewUsuarioService(repo, pagamentos, Opcoes{})

			req := requisicaoValida()
			req.PriceID = priceID
			_, err := svc.CriarSessaoCheckout(context.Background(), req)
			require.NoError(t, err)

			require.NotNil(t, pagamentos.ultimoParams.SubscriptionData.TrialPeriodDays)
			assert.Equal(t, int64(7), *pagamentos.ultimoParams.SubscriptionData.TrialPeriodDays, "price %s", priceID)
		}
	})

	t.Run("parâmetros da sessão seguem o contrato do provedor", func(t *testing.T) {
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return usuarioExistente(), nil
			},
		}
		pagamentos := &mockPagamentos{}
		svc := NewUsuarioService(repo, pagamentos, Opcoes{})

		_, err := svc.CriarSessaoCheckout(context.Background(), requisicaoValida())
		require.NoError(t, err)

		params := pagamentos.ultimoParams
		assert.Equal(t, "subscription", *params.Mode)
		assert.Equal(t, "a@b.com", *params.CustomerEmail)
		assert.Equal(t, "https://x/success", *params.SuccessURL)
		assert.Equal(t, "https://x/cancel", *params.CancelURL)
		require.Len(t, params.LineItems, 1)
		assert.Equal(t, "price_creator_monthly", *params.LineItems[0].Price)
		assert.Equal(t, int64(1), *params.LineItems[0].Quantity)
		assert.True(t, *params.AllowPromotionCodes)
		assert.Equal(t, "required", *params.BillingAddressCollection)
	})

	t.Run("erro do provedor vira falha genérica e o detalhe fica só no log", func(t *testing.T) {
		var logs bytes.Buffer
		anterior := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
		defer slog.SetDefault(anterior)

		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return usuarioExistente(), nil
			},
		}
		pagamentos := &mockPagamentos{
			CriarSessaoFn: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
				return nil, errors.New("stripe: No such price: 'price_creator_monthly'")
			},
		}
		svc := NewUsuarioService(repo, pagamentos, Opcoes{})

		_, err := svc.CriarSessaoCheckout(context.Background(), requisicaoValida())

		require.ErrorIs(t, err, ErrCriacaoSessaoCheckout)
		// O erro exposto não carrega o texto do provedor...
		assert.NotContains(t, err.Error(), "No such price")
		// ...mas o log dos operadores carrega.
		assert.Contains(t, logs.String(), "No such price")
	})
}
