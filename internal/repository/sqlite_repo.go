package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/cinema-api/internal/domain"
)

// UsuarioRepository define a interface para as operações de persistência de usuários.
// Usar uma interface nos permite 'mockar' o repositório em testes e trocar a implementação do banco de dados facilmente.
// Ela é o nosso diretório de contas: o orquestrador de checkout só lê daqui,
// quem escreve os dados de assinatura é o processamento de webhook.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario domain.Usuario) error
	GetAll(ctx context.Context) ([]domain.Usuario, error)
	GetByID(ctx context.Context, id string) (*domain.Usuario, error)
	GetByStripeCustomerID(ctx context.Context, stripeID string) (*domain.Usuario, error)
	Update(ctx context.Context, id string, usuario domain.Usuario) error
	UpdateAssinatura(ctx context.Context, id string, usuario domain.Usuario) error
	Delete(ctx context.Context, id string) error
}

// sqliteRepository é a implementação do UsuarioRepository para SQLite.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository cria uma nova instância do nosso repositório.
// É assim que injetamos a dependência do banco de dados.
func NewSQLiteRepository(db *sql.DB) UsuarioRepository {
	return &sqliteRepository{
		db: db,
	}
}

const colunasUsuario = `id, nome, email, stripe_customer_id, stripe_subscription_id,
	subscription_tier, em_trial, subscription_expires_at, criado_em`

// --- MÉTODOS DA IMPLEMENTAÇÃO ---

func (r *sqliteRepository) Create(ctx context.Context, usuario domain.Usuario) error {
	stmt, err := r.db.PrepareContext(ctx,
		"INSERT INTO usuarios(id, nome, email, subscription_tier, criado_em) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, usuario.ID, usuario.Nome, usuario.Email,
		string(usuario.TierAssinatura), usuario.CriadoEm)
	return err
}

func (r *sqliteRepository) GetAll(ctx context.Context) ([]domain.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+colunasUsuario+" FROM usuarios")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []domain.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, *u)
	}

	return usuarios, rows.Err()
}

func (r *sqliteRepository) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+colunasUsuario+" FROM usuarios WHERE id = ?", id)
	return scanUsuarioRow(row)
}

func (r *sqliteRepository) GetByStripeCustomerID(ctx context.Context, stripeID string) (*domain.Usuario, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+colunasUsuario+" FROM usuarios WHERE stripe_customer_id = ?", stripeID)
	return scanUsuarioRow(row)
}

func (r *sqliteRepository) Update(ctx context.Context, id string, usuario domain.Usuario) error {
	stmt, err := r.db.PrepareContext(ctx, "UPDATE usuarios SET nome = ?, email = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, usuario.Nome, usuario.Email, id)
	return err
}

// UpdateAssinatura grava apenas os campos controlados pelo provedor de
// pagamento. É o único caminho de escrita usado pelo webhook.
func (r *sqliteRepository) UpdateAssinatura(ctx context.Context, id string, usuario domain.Usuario) error {
	stmt, err := r.db.PrepareContext(ctx, `UPDATE usuarios SET
		stripe_customer_id = ?, stripe_subscription_id = ?,
		subscription_tier = ?, em_trial = ?, subscription_expires_at = ?
		WHERE id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, usuario.StripeCustomerID, usuario.StripeSubscriptionID,
		string(usuario.TierAssinatura), usuario.EmTrial, usuario.AssinaturaExpiraEm, id)
	return err
}

func (r *sqliteRepository) Delete(ctx context.Context, id string) error {
	stmt, err := r.db.PrepareContext(ctx, "DELETE FROM usuarios WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id)
	return err
}

// --- SCAN HELPERS ---

type scanner interface {
	Scan(dest ...any) error
}

func scanUsuario(s scanner) (*domain.Usuario, error) {
	var (
		u        domain.Usuario
		tier     string
		expiraEm sql.NullTime
	)
	if err := s.Scan(&u.ID, &u.Nome, &u.Email, &u.StripeCustomerID, &u.StripeSubscriptionID,
		&tier, &u.EmTrial, &expiraEm, &u.CriadoEm); err != nil {
		return nil, err
	}
	u.TierAssinatura = domain.TierAssinatura(tier)
	if expiraEm.Valid {
		u.AssinaturaExpiraEm = expiraEm.Time
	}
	return &u, nil
}

func scanUsuarioRow(row *sql.Row) (*domain.Usuario, error) {
	u, err := scanUsuario(row)
	if err != nil {
		// É uma boa prática tratar o erro 'sql.ErrNoRows' separadamente.
		if err == sql.ErrNoRows {
			return nil, nil // Retorna nil, nil se o usuário não for encontrado.
		}
		return nil, err
	}
	return u, nil
}
