package domain

import "time"

// TierAssinatura representa o nível de assinatura de um usuário.
// O tier é a nossa "fonte da verdade" interna para decidir o que o
// usuário pode ou não fazer (entitlements).
type TierAssinatura string

const (
	TierGratuito TierAssinatura = "free"
	TierCreator  TierAssinatura = "creator"
	TierPro      TierAssinatura = "pro"
)

// Usuario é o registro de conta mantido no nosso diretório.
// O ID é um UUID estável: é ele (e não o e-mail, que pode mudar) que
// amarra os eventos assíncronos da Stripe de volta à conta certa.
type Usuario struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`

	// ID do cliente na Stripe (ex: "cus_...").
	// Essencial para ligar nosso usuário ao cliente na Stripe.
	StripeCustomerID string `json:"-"` // O "-" significa que este campo não será exposto na nossa API JSON.

	// ID da assinatura na Stripe (ex: "sub_...").
	StripeSubscriptionID string `json:"-"`

	// Tier atual da assinatura. Atualizado de forma assíncrona pelo
	// webhook da Stripe; logo após um redirect de sucesso ele pode
	// ainda estar desatualizado.
	TierAssinatura TierAssinatura `json:"subscription_tier"`

	// Indica se a assinatura ainda está no período de teste gratuito.
	EmTrial bool `json:"em_trial"`

	// Data de expiração do período atual da assinatura.
	AssinaturaExpiraEm time.Time `json:"subscription_expires_at"`

	CriadoEm time.Time `json:"criado_em"`
}

// Assinante informa se o usuário tem um tier pago.
func (u *Usuario) Assinante() bool {
	return u.TierAssinatura == TierCreator || u.TierAssinatura == TierPro
}

// PodeCriarFilme é a checagem de entitlement feita no servidor, no
// momento do uso. As flags exibidas no cliente após o checkout não são
// autoritativas; esta função é.
func (u *Usuario) PodeCriarFilme() bool {
	return u.Assinante()
}
