package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/willjrcristo/cinema-api/internal/ativacao"
	"github.com/willjrcristo/cinema-api/internal/domain"
	"github.com/willjrcristo/cinema-api/internal/service"
)

// Para facilitar os testes, definimos uma interface que o nosso serviço deve satisfazer.
// O handler depende desta interface, não da implementação concreta do serviço.
type UsuarioService interface {
	CreateUser(ctx context.Context, usuario domain.Usuario) (*domain.Usuario, error)
	GetUserByID(ctx context.Context, id string) (*domain.Usuario, error)
	GetAllUsers(ctx context.Context) ([]domain.Usuario, error)
	UpdateUser(ctx context.Context, id string, usuario domain.Usuario) error
	DeleteUser(ctx context.Context, id string) error
	CriarSessaoCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.SessaoCheckout, error)
	AtualizarPerfil(ctx context.Context, usuarioID string) (*domain.Usuario, error)
	CriarFilme(ctx context.Context, usuarioID, titulo, diario string) (*domain.Filme, error)
	ProcessarWebhookStripe(ctx context.Context, payload []byte, assinatura string) error
}

// UsuarioHandler lida com as requisições HTTP de usuários, checkout e filmes.
type UsuarioHandler struct {
	service       UsuarioService
	reconciliador *ativacao.Reconciliador
	validador     *validator.Validate
	moedaCatalogo string
}

// NewUsuarioHandler cria uma nova instância do UsuarioHandler.
// O próprio serviço faz o papel de refresher de perfil do reconciliador.
func NewUsuarioHandler(s UsuarioService, moedaCatalogo string) *UsuarioHandler {
	return &UsuarioHandler{
		service:       s,
		reconciliador: ativacao.NewReconciliador(s, 0),
		validador:     validator.New(),
		moedaCatalogo: moedaCatalogo,
	}
}

// Routes define e retorna as rotas de /usuarios.
func (h *UsuarioHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateUser)          // POST /usuarios
	r.Get("/", h.GetAllUsers)          // GET /usuarios
	r.Get("/{id}", h.GetUserByID)      // GET /usuarios/{id}
	r.Put("/{id}", h.UpdateUser)       // PUT /usuarios/{id}
	r.Delete("/{id}", h.DeleteUser)    // DELETE /usuarios/{id}
	r.Get("/{id}/perfil", h.GetPerfil) // GET /usuarios/{id}/perfil

	return r
}

// --- CHECKOUT ---

type criarSessaoRequest struct {
	PriceID    string `json:"priceId" validate:"required"`
	UserID     string `json:"userId" validate:"required"`
	UserEmail  string `json:"userEmail" validate:"required,email"`
	SuccessURL string `json:"successUrl" validate:"required,url"`
	CancelURL  string `json:"cancelUrl" validate:"required,url"`
}

// @Summary      Cria uma sessão de checkout na Stripe
// @Description  Valida a conta no diretório e gera uma sessão de assinatura com 7 dias de teste
// @Tags         assinaturas
// @Accept       json
// @Produce      json
// @Param        checkout  body      criarSessaoRequest  true  "Dados do checkout"
// @Success      200  {object}  domain.SessaoCheckout
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checkout-sessions [post]
func (h *UsuarioHandler) CriarSessaoCheckout(w http.ResponseWriter, r *http.Request) {
	var req criarSessaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	// As URLs de redirect precisam ser absolutas e o e-mail, válido.
	if err := h.validador.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Dados do checkout inválidos")
		return
	}

	sessao, err := h.service.CriarSessaoCheckout(r.Context(), domain.CheckoutRequest{
		PriceID:    req.PriceID,
		UsuarioID:  req.UserID,
		Email:      req.UserEmail,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		switch err {
		case service.ErrUsuarioNaoEncontrado:
			respondWithError(w, http.StatusNotFound, err.Error())
		default:
			// Nunca vaza o detalhe do provedor; ele já foi logado no serviço.
			respondWithError(w, http.StatusInternalServerError, "Erro ao criar sessão de checkout")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"sessionId": sessao.ID})
}

// --- DESFECHOS DO PAGAMENTO ---

type sucessoResponse struct {
	Mensagem        string          `json:"mensagem"`
	Estado          ativacao.Estado `json:"estado"`
	Funcionalidades []string        `json:"funcionalidades"`
	// Perfil recém-buscado; nulo quando a exibição segue com o cache do cliente.
	Perfil *domain.Usuario `json:"perfil,omitempty"`
}

// @Summary      Confirmação do pagamento (redirect de sucesso)
// @Description  Reconcilia o perfil com espera limitada; a confirmação é exibida mesmo que o webhook ainda não tenha chegado
// @Tags         assinaturas
// @Produce      json
// @Param        session_id  query     string  false  "Referência da sessão de checkout"
// @Param        user_id     query     string  false  "ID do usuário autenticado"
// @Success      200  {object}  sucessoResponse
// @Router       /pagamento/sucesso [get]
func (h *UsuarioHandler) PagamentoSucesso(w http.ResponseWriter, r *http.Request) {
	res := h.reconciliador.Executar(r.Context(),
		r.URL.Query().Get("user_id"),
		r.URL.Query().Get("session_id"))

	respondWithJSON(w, http.StatusOK, sucessoResponse{
		Mensagem:        "Pagamento confirmado! Suas funcionalidades premium estão ativas.",
		Estado:          res.Estado,
		Funcionalidades: ativacao.FuncionalidadesPremium,
		Perfil:          res.Perfil,
	})
}

// @Summary      Tela de cancelamento do pagamento
// @Description  Conteúdo estático; nenhuma ação compensatória é necessária
// @Tags         assinaturas
// @Produce      json
// @Success      200  {object}  ativacao.ApresentacaoCancelamento
// @Router       /pagamento/cancelado [get]
func (h *UsuarioHandler) PagamentoCancelado(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ativacao.Cancelamento())
}

// @Summary      Lista o catálogo de planos
// @Tags         assinaturas
// @Produce      json
// @Success      200  {array}  domain.Plano
// @Router       /planos [get]
func (h *UsuarioHandler) GetPlanos(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, domain.Planos(h.moedaCatalogo))
}

// --- FILMES ---

type criarFilmeRequest struct {
	UserID string `json:"userId" validate:"required"`
	Titulo string `json:"titulo"`
	Diario string `json:"diario" validate:"required"`
}

// @Summary      Cria um filme a partir de um diário
// @Description  Exige assinatura ativa; o entitlement é re-checado no servidor no momento do uso
// @Tags         filmes
// @Accept       json
// @Produce      json
// @Param        filme  body      criarFilmeRequest  true  "Dados do filme"
// @Success      201  {object}  domain.Filme
// @Failure      400  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /filmes [post]
func (h *UsuarioHandler) CriarFilme(w http.ResponseWriter, r *http.Request) {
	var req criarFilmeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validador.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "O conteúdo do diário é obrigatório")
		return
	}

	filme, err := h.service.CriarFilme(r.Context(), req.UserID, req.Titulo, req.Diario)
	if err != nil {
		switch err {
		case service.ErrUsuarioNaoEncontrado:
			respondWithError(w, http.StatusNotFound, err.Error())
		case service.ErrAssinaturaNecessaria:
			respondWithError(w, http.StatusPaymentRequired, err.Error())
		case service.ErrDiarioObrigatorio:
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Erro ao criar filme")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, filme)
}

// --- USUÁRIOS ---

// @Summary      Cria um novo usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        usuario  body      domain.Usuario  true  "Dados do usuário para criação"
// @Success      201      {object}  domain.Usuario
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /usuarios [post]
func (h *UsuarioHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var usuario domain.Usuario
	if err := json.NewDecoder(r.Body).Decode(&usuario); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	criado, err := h.service.CreateUser(r.Context(), usuario)
	if err != nil {
		if err == service.ErrDadosInvalidos {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, criado)
}

// @Summary      Lista todos os usuários
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}   domain.Usuario
// @Failure      500  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UsuarioHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Erro ao buscar usuários")
		return
	}
	respondWithJSON(w, http.StatusOK, usuarios)
}

// @Summary      Busca um usuário por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path      string  true  "ID do Usuário"
// @Success      200  {object}  domain.Usuario
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /usuarios/{id} [get]
func (h *UsuarioHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	usuario, err := h.service.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == service.ErrUsuarioNaoEncontrado {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao buscar usuário")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, usuario)
}

// @Summary      Re-busca o perfil do usuário
// @Description  Usado pela tela de sucesso para reconciliar o cache local com o diretório
// @Tags         usuarios
// @Produce      json
// @Param        id   path      string  true  "ID do Usuário"
// @Success      200  {object}  domain.Usuario
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id}/perfil [get]
func (h *UsuarioHandler) GetPerfil(w http.ResponseWriter, r *http.Request) {
	perfil, err := h.service.AtualizarPerfil(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == service.ErrUsuarioNaoEncontrado {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao atualizar perfil")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, perfil)
}

// @Summary      Atualiza um usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "ID do Usuário"
// @Param        usuario  body      domain.Usuario  true  "Dados do usuário para atualização"
// @Success      204      {string}  string "No Content"
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /usuarios/{id} [put]
func (h *UsuarioHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var usuario domain.Usuario
	if err := json.NewDecoder(r.Body).Decode(&usuario); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), usuario)
	if err != nil {
		switch err {
		case service.ErrUsuarioNaoEncontrado:
			respondWithError(w, http.StatusNotFound, err.Error())
		case service.ErrDadosInvalidos:
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Deleta um usuário
// @Tags         usuarios
// @Produce      json
// @Param        id   path      string  true  "ID do Usuário"
// @Success      204  {string}  string "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [delete]
func (h *UsuarioHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == service.ErrUsuarioNaoEncontrado {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao deletar usuário")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- WEBHOOK DA STRIPE ---
// (Struct separada para manter a lógica do webhook isolada.)

type StripeWebhookHandler struct {
	service UsuarioService
}

func NewStripeWebhookHandler(s UsuarioService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		service: s,
	}
}

// HandleStripeWebhook é o handler da rota que recebe os eventos da Stripe.
func (h *StripeWebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536) // Limite de 64KB
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Erro ao ler o corpo do webhook", "error", err)
		respondWithError(w, http.StatusServiceUnavailable, "Erro ao ler corpo da requisição")
		return
	}

	signature := r.Header.Get("Stripe-Signature")

	err = h.service.ProcessarWebhookStripe(r.Context(), payload, signature)
	if err != nil {
		if err == service.ErrWebhookStripe {
			respondWithError(w, http.StatusBadRequest, "Falha na verificação da assinatura do webhook")
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro interno ao processar webhook")
		}
		return
	}

	// 200 OK para a Stripe saber que recebemos o evento.
	w.WriteHeader(http.StatusOK)
}

// --- FUNÇÕES AUXILIARES ---

func respondWithError(w http.ResponseWriter, code int, message string) {
	slog.Error("API Error", "code", code, "message", message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
