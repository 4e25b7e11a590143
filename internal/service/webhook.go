package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/subscription"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

// ProcessarWebhookStripe processa os eventos recebidos da Stripe.
// É este caminho, e não o redirect de sucesso, que efetivamente grava a
// assinatura no diretório de contas.
func (s *UsuarioService) ProcessarWebhookStripe(ctx context.Context, payload []byte, assinatura string) error {
	// 1. Verificar a assinatura do evento.
	event, err := webhook.ConstructEvent(payload, assinatura, s.opcoes.WebhookSecret)
	if err != nil {
		slog.Error("Erro ao verificar a assinatura do webhook", "error", err)
		return ErrWebhookStripe
	}

	// 2. Processar o evento com base no seu tipo.
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}

		// O metadado da sessão carrega o ID da conta que originou o checkout.
		usuarioID := sess.Metadata["userId"]
		if usuarioID == "" {
			slog.Warn("Sessão de checkout sem userId nos metadados", "session_id", sess.ID)
			return nil
		}

		if sess.Subscription == nil {
			slog.Warn("Sessão completada sem assinatura associada", "session_id", sess.ID)
			return nil
		}

		// Obtenha a assinatura completa para ter o price e a vigência.
		sub, err := subscription.Get(sess.Subscription.ID, nil)
		if err != nil {
			return err
		}

		usuario, err := s.repo.GetByID(ctx, usuarioID)
		if err != nil {
			return err
		}
		if usuario == nil {
			slog.Warn("Webhook referencia usuário inexistente", "usuario_id", usuarioID)
			return nil
		}

		if sess.Customer != nil {
			usuario.StripeCustomerID = sess.Customer.ID
		}
		return s.aplicarAssinatura(ctx, usuario, sub)

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}

		// Aqui quem carrega o userId é o metadado da própria assinatura;
		// é por isso que o orquestrador o grava também nesse nível.
		// Assinaturas criadas fora do nosso checkout podem não ter o
		// metadado; nesse caso caímos para o cliente Stripe, que foi
		// gravado no registro quando a sessão completou.
		var (
			usuario *domain.Usuario
			err     error
		)
		if usuarioID := sub.Metadata["userId"]; usuarioID != "" {
			usuario, err = s.repo.GetByID(ctx, usuarioID)
		} else if sub.Customer != nil {
			usuario, err = s.repo.GetByStripeCustomerID(ctx, sub.Customer.ID)
		} else {
			slog.Warn("Assinatura sem userId nos metadados e sem cliente", "subscription_id", sub.ID)
			return nil
		}
		if err != nil {
			return err
		}
		if usuario == nil {
			slog.Warn("Webhook referencia usuário inexistente", "subscription_id", sub.ID)
			return nil
		}
		return s.aplicarAssinatura(ctx, usuario, &sub)

	default:
		slog.Info("Webhook da Stripe recebido, mas não tratado", "event_type", event.Type)
	}

	return nil
}

// aplicarAssinatura traduz o estado da assinatura na Stripe para o
// registro local e persiste.
func (s *UsuarioService) aplicarAssinatura(ctx context.Context, usuario *domain.Usuario, sub *stripe.Subscription) error {
	priceID := ""
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		priceID = sub.Items.Data[0].Price.ID
	}

	switch sub.Status {
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusUnpaid, stripe.SubscriptionStatusIncompleteExpired:
		usuario.TierAssinatura = domain.TierGratuito
	default:
		usuario.TierAssinatura = domain.TierPorPrice(priceID)
	}

	usuario.EmTrial = sub.Status == stripe.SubscriptionStatusTrialing
	usuario.StripeSubscriptionID = sub.ID
	usuario.AssinaturaExpiraEm = time.Unix(sub.CurrentPeriodEnd, 0).UTC()

	if err := s.repo.UpdateAssinatura(ctx, usuario.ID, *usuario); err != nil {
		return err
	}
	slog.Info("✅ Assinatura atualizada", "usuario_id", usuario.ID, "tier", usuario.TierAssinatura, "status", sub.Status)
	return nil
}
