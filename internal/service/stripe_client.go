package service

import (
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

// PaymentSessionService é a porta para o provedor de pagamento. O
// serviço depende desta interface, e não do SDK direto, para que os
// testes consigam contar e inspecionar as chamadas feitas à Stripe.
type PaymentSessionService interface {
	CriarSessao(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessionClient struct{}

// NewStripeSessionClient configura a chave global do SDK e devolve o
// cliente real usado em produção.
func NewStripeSessionClient(apiKey string) PaymentSessionService {
	stripe.Key = apiKey
	return stripeSessionClient{}
}

func (stripeSessionClient) CriarSessao(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}
