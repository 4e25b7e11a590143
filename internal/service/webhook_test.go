package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

const segredoWebhookTeste = "whsec_teste"

// assinarPayload monta o header Stripe-Signature do jeito que a Stripe
// assina: v1 = HMAC-SHA256(segredo, "<timestamp>.<payload>").
func assinarPayload(payload []byte, segredo string) string {
	t := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(segredo))
	fmt.Fprintf(mac, "%d.%s", t, payload)
	return fmt.Sprintf("t=%d,v1=%s", t, hex.EncodeToString(mac.Sum(nil)))
}

func eventoAssinatura(tipo, objetoJSON string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_teste_1",
		"object": "event",
		"type": %q,
		"data": {"object": %s}
	}`, tipo, objetoJSON))
}

const assinaturaProAtivaJSON = `{
	"id": "sub_123",
	"object": "subscription",
	"status": "active",
	"customer": "cus_123",
	"metadata": {"userId": "u1"},
	"current_period_end": 1767225600,
	"items": {"object": "list", "data": [
		{"id": "si_1", "object": "subscription_item", "price": {"id": "price_pro_monthly", "object": "price"}}
	]}
}`

func TestProcessarWebhookStripe(t *testing.T) {
	t.Run("assinatura inválida - rejeitado sem tocar no diretório", func(t *testing.T) {
		var atualizacoes int
		repo := &mockRepo{
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				atualizacoes++
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("customer.subscription.updated", assinaturaProAtivaJSON)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, "t=1,v1=assinatura-falsa")

		assert.ErrorIs(t, err, ErrWebhookStripe)
		assert.Equal(t, 0, atualizacoes)
	})

	t.Run("subscription.updated - grava o tier do price nos dados do usuário", func(t *testing.T) {
		var gravado domain.Usuario
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				assert.Equal(t, "u1", id)
				return &domain.Usuario{ID: "u1", TierAssinatura: domain.TierGratuito}, nil
			},
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				gravado = u
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("customer.subscription.updated", assinaturaProAtivaJSON)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, assinarPayload(payload, segredoWebhookTeste))

		require.NoError(t, err)
		assert.Equal(t, domain.TierPro, gravado.TierAssinatura)
		assert.Equal(t, "sub_123", gravado.StripeSubscriptionID)
		assert.False(t, gravado.EmTrial)
	})

	t.Run("subscription.deleted com status canceled - volta para o gratuito", func(t *testing.T) {
		cancelada := `{
			"id": "sub_123",
			"object": "subscription",
			"status": "canceled",
			"customer": "cus_123",
			"metadata": {"userId": "u1"},
			"current_period_end": 1767225600,
			"items": {"object": "list", "data": [
				{"id": "si_1", "object": "subscription_item", "price": {"id": "price_pro_monthly", "object": "price"}}
			]}
		}`
		var gravado domain.Usuario
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return &domain.Usuario{ID: "u1", TierAssinatura: domain.TierPro}, nil
			},
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				gravado = u
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("customer.subscription.deleted", cancelada)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, assinarPayload(payload, segredoWebhookTeste))

		require.NoError(t, err)
		assert.Equal(t, domain.TierGratuito, gravado.TierAssinatura)
	})

	t.Run("sem userId nos metadados - cai para o cliente Stripe", func(t *testing.T) {
		semMetadado := `{
			"id": "sub_123",
			"object": "subscription",
			"status": "active",
			"customer": "cus_123",
			"metadata": {},
			"current_period_end": 1767225600,
			"items": {"object": "list", "data": [
				{"id": "si_1", "object": "subscription_item", "price": {"id": "price_creator_monthly", "object": "price"}}
			]}
		}`
		var gravado domain.Usuario
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				t.Fatal("não deveria buscar por id sem userId nos metadados")
				return nil, nil
			},
			GetByStripeCustomerIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				assert.Equal(t, "cus_123", id)
				return &domain.Usuario{ID: "u1", StripeCustomerID: "cus_123"}, nil
			},
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				gravado = u
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("customer.subscription.updated", semMetadado)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, assinarPayload(payload, segredoWebhookTeste))

		require.NoError(t, err)
		assert.Equal(t, domain.TierCreator, gravado.TierAssinatura)
	})

	t.Run("usuário inexistente - evento é ignorado sem erro", func(t *testing.T) {
		var atualizacoes int
		repo := &mockRepo{
			GetByIDFn: func(ctx context.Context, id string) (*domain.Usuario, error) {
				return nil, nil
			},
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				atualizacoes++
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("customer.subscription.updated", assinaturaProAtivaJSON)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, assinarPayload(payload, segredoWebhookTeste))

		require.NoError(t, err)
		assert.Equal(t, 0, atualizacoes)
	})

	t.Run("evento não tratado - reconhecido sem efeito colateral", func(t *testing.T) {
		var atualizacoes int
		repo := &mockRepo{
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				atualizacoes++
				return nil
			},
		}
		svc := NewUsuarioService(repo, &mockPagamentos{}, Opcoes{WebhookSecret: segredoWebhookTeste})

		payload := eventoAssinatura("invoice.payment_succeeded", `{"id": "in_1", "object": "invoice"}`)
		err := svc.ProcessarWebhookStripe(context.Background(), payload, assinarPayload(payload, segredoWebhookTeste))

		require.NoError(t, err)
		assert.Equal(t, 0, atualizacoes)
	})
}

func TestAplicarAssinatura(t *testing.T) {
	novaAssinatura := func(status stripe.SubscriptionStatus, priceID string) *stripe.Subscription {
		return &stripe.Subscription{
			ID:               "sub_1",
			Status:           status,
			CurrentPeriodEnd: 1767225600,
			Items: &stripe.SubscriptionItemList{Data: []*stripe.SubscriptionItem{
				{Price: &stripe.Price{ID: priceID}},
			}},
		}
	}

	gravarEm := func(destino *domain.Usuario) *mockRepo {
		return &mockRepo{
			UpdateAssinaturaFn: func(ctx context.Context, id string, u domain.Usuario) error {
				*destino = u
				return nil
			},
		}
	}

	t.Run("status terminais rebaixam para o gratuito, mesmo com price pago", func(t *testing.T) {
		for _, status := range []stripe.SubscriptionStatus{
			stripe.SubscriptionStatusCanceled,
			stripe.SubscriptionStatusUnpaid,
			stripe.SubscriptionStatusIncompleteExpired,
		} {
			var gravado domain.Usuario
			svc := NewUsuarioService(gravarEm(&gravado), &mockPagamentos{}, Opcoes{})
			usuario := &domain.Usuario{ID: "u1", TierAssinatura: domain.TierPro}

			err := svc.aplicarAssinatura(context.Background(), usuario, novaAssinatura(status, "price_pro_monthly"))

			require.NoError(t, err)
			assert.Equal(t, domain.TierGratuito, gravado.TierAssinatura, "status %s", status)
			assert.False(t, gravado.EmTrial)
		}
	})

	t.Run("status trialing liga a flag de trial e mantém o tier do price", func(t *testing.T) {
		var gravado domain.Usuario
		svc := NewUsuarioService(gravarEm(&gravado), &mockPagamentos{}, Opcoes{})
		usuario := &domain.Usuario{ID: "u1", TierAssinatura: domain.TierGratuito}

		err := svc.aplicarAssinatura(context.Background(), usuario, novaAssinatura(stripe.SubscriptionStatusTrialing, "price_creator_monthly"))

		require.NoError(t, err)
		assert.Equal(t, domain.TierCreator, gravado.TierAssinatura)
		assert.True(t, gravado.EmTrial)
	})

	t.Run("price desconhecido cai no gratuito", func(t *testing.T) {
		var gravado domain.Usuario
		svc := NewUsuarioService(gravarEm(&gravado), &mockPagamentos{}, Opcoes{})
		usuario := &domain.Usuario{ID: "u1", TierAssinatura: domain.TierGratuito}

		err := svc.aplicarAssinatura(context.Background(), usuario, novaAssinatura(stripe.SubscriptionStatusActive, "price_que_nao_existe"))

		require.NoError(t, err)
		assert.Equal(t, domain.TierGratuito, gravado.TierAssinatura)
		assert.Equal(t, time.Unix(1767225600, 0).UTC(), gravado.AssinaturaExpiraEm)
	})
}
