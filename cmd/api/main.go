package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/willjrcristo/cinema-api/docs" // Importa a pasta docs gerada

	// Nossos pacotes internos da aplicação!
	"github.com/willjrcristo/cinema-api/internal/config"
	httphandler "github.com/willjrcristo/cinema-api/internal/handler/http"
	"github.com/willjrcristo/cinema-api/internal/repository"
	"github.com/willjrcristo/cinema-api/internal/service"
)

// @title           Cinema API
// @version         1.0
// @description     API de assinaturas e checkout do gerador de filmes por IA.
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   Will Cristo
// @contact.url    https://linkedin.com/in/willjrcristo
// @contact.email  willjrcristo@gmail.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8080
// @BasePath  /
func main() {
	// --- 1. CONFIGURAÇÃO DO LOGGER ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("🚀 Iniciando a Cinema API...")

	// --- 2. CONFIGURAÇÃO ---
	// Sem fallback para chaves de sandbox: se faltar configuração
	// obrigatória, a aplicação não sobe.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Erro ao carregar a configuração", "error", err)
		os.Exit(1)
	}

	// --- 3. CONEXÃO COM O BANCO DE DADOS ---
	db, err := initDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Erro ao inicializar o banco de dados", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("💾 Conexão com o banco de dados estabelecida com sucesso.")

	// --- 4. INJEÇÃO DE DEPENDÊNCIAS (WIRING) ---
	// DB -> Repository -> Service -> Handler

	usuarioRepo := repository.NewSQLiteRepository(db)
	slog.Info("Camada de repositório inicializada")

	pagamentos := service.NewStripeSessionClient(cfg.StripeSecretKey)
	usuarioService := service.NewUsuarioService(usuarioRepo, pagamentos, service.Opcoes{
		TrialPeriodDays: cfg.TrialPeriodDays,
		WebhookSecret:   cfg.StripeWebhookSecret,
	})
	slog.Info("Camada de serviço inicializada")

	usuarioHandler := httphandler.NewUsuarioHandler(usuarioService, cfg.DefaultCurrency)
	webhookHandler := httphandler.NewStripeWebhookHandler(usuarioService)
	slog.Info("Camada de handler inicializada")

	// --- 5. CONFIGURAÇÃO DO ROTEADOR E ROTAS ---
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(prometheusMiddleware)

	// Rota de Health Check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Cinema API está no ar! 🎬"))
	})

	// Métricas para o Prometheus
	r.Handle("/metrics", promhttp.Handler())

	// Documentação Swagger em http://localhost:8080/swagger/index.html
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	slog.Info("📖 Documentação Swagger disponível em http://localhost:8080/swagger/index.html")

	// Fluxo de checkout e desfechos do pagamento
	r.Post("/checkout-sessions", usuarioHandler.CriarSessaoCheckout)
	r.Get("/pagamento/sucesso", usuarioHandler.PagamentoSucesso)
	r.Get("/pagamento/cancelado", usuarioHandler.PagamentoCancelado)
	r.Get("/planos", usuarioHandler.GetPlanos)

	// Criação de filmes (exige assinatura ativa)
	r.Post("/filmes", usuarioHandler.CriarFilme)

	// Eventos assíncronos da Stripe
	r.Post("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

	// Rotas de usuário sob o prefixo /usuarios
	r.Mount("/usuarios", usuarioHandler.Routes())
	slog.Info("🛰️  Rotas registradas")

	// --- 6. INICIALIZAÇÃO DO SERVIDOR HTTP ---
	slog.Info("✅ Servidor pronto para receber requisições", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		slog.Error("Erro ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}

// initDB abre a conexão e aplica as migrações embutidas.
func initDB(filepath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
