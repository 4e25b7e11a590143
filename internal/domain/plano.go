package domain

// Plano descreve um plano de assinatura vendável. O PriceID é o
// identificador do preço no provedor de pagamento; é ele que circula
// nas requisições de checkout e nos eventos de webhook.
type Plano struct {
	PriceID       string         `json:"price_id"`
	Nome          string         `json:"nome"`
	Descricao     string         `json:"descricao"`
	ValorCentavos int64          `json:"valor_centavos"`
	Moeda         string         `json:"moeda"`
	Tier          TierAssinatura `json:"tier"`
}

// Catálogo fixo de planos. Os valores vêm do cadastro de produtos no
// dashboard da Stripe.
var planos = []Plano{
	{
		PriceID:       "price_creator_monthly",
		Nome:          "Plano Creator",
		Descricao:     "10 filmes por mês, 1080p HD, estilos premium",
		ValorCentavos: 9900,
		Tier:          TierCreator,
	},
	{
		PriceID:       "price_pro_monthly",
		Nome:          "Plano Pro",
		Descricao:     "Filmes ilimitados, 4K Ultra HD, todas as funcionalidades",
		ValorCentavos: 19900,
		Tier:          TierPro,
	},
}

// Planos retorna o catálogo com a moeda de exibição preenchida.
func Planos(moeda string) []Plano {
	out := make([]Plano, len(planos))
	copy(out, planos)
	for i := range out {
		out[i].Moeda = moeda
	}
	return out
}

// TierPorPrice mapeia um price ID do provedor para o tier interno.
// Price IDs desconhecidos caem no tier gratuito.
func TierPorPrice(priceID string) TierAssinatura {
	for _, p := range planos {
		if p.PriceID == priceID {
			return p.Tier
		}
	}
	return TierGratuito
}
