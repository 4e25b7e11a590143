package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config concentra toda a configuração da aplicação. Nada de os.Getenv
// espalhado pelo código: o struct é carregado uma vez no main e passado
// explicitamente para quem precisa.
//
// Não existe fallback para chaves de teste. Se a chave da Stripe não
// estiver configurada a aplicação se recusa a subir, em vez de criar
// sessões silenciosamente contra um sandbox que não funciona.
type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./cinema.db"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY,required,notEmpty"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET,required,notEmpty"`

	// Dias de teste gratuito aplicados a toda nova assinatura.
	TrialPeriodDays int64 `env:"TRIAL_PERIOD_DAYS" envDefault:"7"`

	// Moeda usada na exibição do catálogo de planos.
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"brl"`
}

// Load carrega o .env (se existir) e preenche o Config a partir das
// variáveis de ambiente.
func Load() (*Config, error) {
	// O .env pode não existir (produção); tudo bem.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	return cfg, nil
}
