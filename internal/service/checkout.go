package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

// Teto aplicado ao par de chamadas externas (diretório + Stripe).
const timeoutCheckout = 15 * time.Second

// CriarSessaoCheckout orquestra a criação de uma sessão de checkout.
//
// A ordem importa: primeiro validamos a conta no diretório e só depois
// falamos com a Stripe. Nunca criamos uma sessão cobrável para uma
// conta que não conseguimos verificar.
//
// Criar duas sessões para o mesmo par conta/plano é permitido; a
// deduplicação, se desejada, fica por conta do próprio matching de
// clientes da Stripe.
func (s *UsuarioService) CriarSessaoCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.SessaoCheckout, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutCheckout)
	defer cancel()

	// 1. Buscar o usuário no nosso diretório. Falha de acesso ao
	// diretório conta como "não encontrado": sem registro verificável,
	// sem checkout.
	usuario, err := s.repo.GetByID(ctx, req.UsuarioID)
	if err != nil {
		slog.Error("Falha ao consultar o diretório de contas", "error", err, "usuario_id", req.UsuarioID)
		return nil, ErrUsuarioNaoEncontrado
	}
	if usuario == nil {
		return nil, ErrUsuarioNaoEncontrado
	}

	// O e-mail de cobrança vem do registro da conta; o do request só é
	// usado se o diretório ainda não tiver um.
	email := usuario.Email
	if email == "" {
		email = req.Email
	}

	// 2. Montar a sessão. O ID da conta vai nos metadados em DOIS
	// níveis: na sessão e na assinatura. Os eventos de cobrança
	// posteriores referenciam o objeto de assinatura, não a sessão.
	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(email),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"userId":  usuario.ID,
				"priceId": req.PriceID,
			},
			TrialPeriodDays: stripe.Int64(s.opcoes.TrialPeriodDays),
		},
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.Context = ctx
	params.AddMetadata("userId", usuario.ID)
	params.AddMetadata("priceId", req.PriceID)

	// 3. Invocar a Stripe. O erro cru fica no log para os operadores;
	// para o usuário final vai sempre a falha genérica.
	sess, err := s.pagamentos.CriarSessao(params)
	if err != nil {
		slog.Error("Falha ao criar a sessão de checkout na Stripe", "error", err, "usuario_id", usuario.ID, "price_id", req.PriceID)
		return nil, ErrCriacaoSessaoCheckout
	}

	return &domain.SessaoCheckout{ID: sess.ID, URL: sess.URL}, nil
}
