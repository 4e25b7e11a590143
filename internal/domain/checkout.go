package domain

// CheckoutRequest é o DTO de entrada do orquestrador de checkout.
// Efêmero: montado a cada requisição, nunca persistido.
type CheckoutRequest struct {
	PriceID    string
	UsuarioID  string
	Email      string
	SuccessURL string
	CancelURL  string
}

// SessaoCheckout é o handle devolvido pelo provedor de pagamento.
// O cliente navega até a URL hospedada; a sessão é consumida uma única
// vez pelo fluxo do provedor e nunca mais alterada por nós.
type SessaoCheckout struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}
