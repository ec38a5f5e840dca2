package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on. Declared
// as an interface so tests can substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped in tests to inject a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type wishRepository struct {
	storage *Storage
}

type offerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type orphanRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Wishes() repository.WishRepository {
	return &wishRepository{storage: s}
}

func (s *Storage) Offers() repository.OfferRepository {
	return &offerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) OrphanedSessions() repository.OrphanedSessionRepository {
	return &orphanRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS offers (
            id SERIAL PRIMARY KEY,
            title TEXT UNIQUE NOT NULL,
            price BIGINT NOT NULL,
            currency TEXT NOT NULL DEFAULT 'EUR',
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS offer_prices (
            id SERIAL PRIMARY KEY,
            offer_id BIGINT NOT NULL REFERENCES offers(id) ON DELETE CASCADE,
            amount BIGINT NOT NULL,
            currency TEXT NOT NULL,
            effective_from TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS wishes (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            material TEXT NOT NULL,
            size_price BIGINT NOT NULL,
            photo_price BIGINT NOT NULL,
            amount INTEGER NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            paid BIGINT NOT NULL,
            status TEXT NOT NULL,
            payment_link TEXT UNIQUE NOT NULL,
            wish_ids BIGINT[] NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orphaned_sessions (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            amount_total BIGINT NOT NULL,
            session_url TEXT NOT NULL,
            reason TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_wishes_user ON wishes(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// translate applies the shared store-error policy: uniqueness
// violations carry the conflicting field/value, missing rows map to
// ErrNotFound, anything else is logged at error severity and passed
// through for the transport layer to hide behind a generic response.
func (s *Storage) translate(err error, field, value string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &domainErrors.DuplicateKeyError{Field: field, Value: value}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	s.logger.Error("storage query failed", slog.String("error", err.Error()))
	return err
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "login", login)
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &u, nil
}

// --- WishRepository implementation ---

func (r *wishRepository) Create(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	const query = `INSERT INTO wishes (user_id, material, size_price, photo_price, amount)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, wish.UserID, wish.Material, wish.SizePrice, wish.PhotoPrice, wish.Amount).
		Scan(&wish.ID, &wish.CreatedAt, &wish.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &wish, nil
}

func (r *wishRepository) GetByID(ctx context.Context, id int64) (*model.Wish, error) {
	const query = `SELECT id, user_id, material, size_price, photo_price, amount, created_at, updated_at
                   FROM wishes WHERE id=$1`
	var w model.Wish
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&w.ID, &w.UserID, &w.Material, &w.SizePrice, &w.PhotoPrice, &w.Amount, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &w, nil
}

func (r *wishRepository) ListByUser(ctx context.Context, userID int64) ([]model.Wish, error) {
	const query = `SELECT id, user_id, material, size_price, photo_price, amount, created_at, updated_at
                   FROM wishes WHERE user_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	defer rows.Close()

	var result []model.Wish
	for rows.Next() {
		var w model.Wish
		if err := rows.Scan(&w.ID, &w.UserID, &w.Material, &w.SizePrice, &w.PhotoPrice, &w.Amount, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *wishRepository) Update(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	const query = `UPDATE wishes
                   SET material=$1, size_price=$2, photo_price=$3, amount=$4, updated_at=NOW()
                   WHERE id=$5
                   RETURNING user_id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, wish.Material, wish.SizePrice, wish.PhotoPrice, wish.Amount, wish.ID).
		Scan(&wish.UserID, &wish.CreatedAt, &wish.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &wish, nil
}

func (r *wishRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM wishes WHERE id=$1`, id)
	if err != nil {
		return r.storage.translate(err, "", "")
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OfferRepository implementation ---

func (r *offerRepository) Create(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	const query = `INSERT INTO offers (title, price, currency, image_url)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	if offer.Currency == "" {
		offer.Currency = "EUR"
	}
	err := r.storage.pool.QueryRow(ctx, query, offer.Title, offer.Price, offer.Currency, offer.ImageURL).
		Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "title", offer.Title)
	}
	return &offer, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	const query = `SELECT id, title, price, currency, image_url, created_at, updated_at FROM offers WHERE id=$1`
	var o model.Offer
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.Title, &o.Price, &o.Currency, &o.ImageURL, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &o, nil
}

func (r *offerRepository) List(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	const query = `SELECT id, title, price, currency, image_url, created_at, updated_at
                   FROM offers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	defer rows.Close()

	var result []model.Offer
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Price, &o.Currency, &o.ImageURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *offerRepository) Update(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	const query = `UPDATE offers
                   SET title=$1, price=$2, currency=$3, image_url=$4, updated_at=NOW()
                   WHERE id=$5
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, offer.Title, offer.Price, offer.Currency, offer.ImageURL, offer.ID).
		Scan(&offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "title", offer.Title)
	}
	return &offer, nil
}

func (r *offerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return r.storage.translate(err, "", "")
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *offerRepository) AddPrice(ctx context.Context, entry model.PriceEntry) (*model.PriceEntry, error) {
	const query = `INSERT INTO offer_prices (offer_id, amount, currency, effective_from)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, entry.OfferID, entry.Amount, entry.Currency, entry.EffectiveFrom).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &entry, nil
}

func (r *offerRepository) ListPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	const query = `SELECT id, offer_id, amount, currency, effective_from, created_at
                   FROM offer_prices WHERE offer_id=$1 ORDER BY effective_from`
	rows, err := r.storage.pool.Query(ctx, query, offerID)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	defer rows.Close()

	var result []model.PriceEntry
	for rows.Next() {
		var e model.PriceEntry
		if err := rows.Scan(&e.ID, &e.OfferID, &e.Amount, &e.Currency, &e.EffectiveFrom, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, paid, status, payment_link, wish_ids)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, order.UserID, order.Paid, order.Status, order.PaymentLink, order.WishIDs).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "payment_link", order.PaymentLink)
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, paid, status, payment_link, wish_ids, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.Paid, &o.Status, &o.PaymentLink, &o.WishIDs, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	const query = `SELECT id, user_id, paid, status, payment_link, wish_ids, created_at, updated_at
                   FROM orders ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Paid, &o.Status, &o.PaymentLink, &o.WishIDs, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2
                   RETURNING id, user_id, paid, status, payment_link, wish_ids, created_at, updated_at`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, status, id).
		Scan(&o.ID, &o.UserID, &o.Paid, &o.Status, &o.PaymentLink, &o.WishIDs, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	return &o, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return r.storage.translate(err, "", "")
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrphanedSessionRepository implementation ---

func (r *orphanRepository) Record(ctx context.Context, session model.OrphanedSession) error {
	const query = `INSERT INTO orphaned_sessions (user_id, amount_total, session_url, reason)
                   VALUES ($1, $2, $3, $4)`
	if _, err := r.storage.pool.Exec(ctx, query, session.UserID, session.AmountTotal, session.SessionURL, session.Reason); err != nil {
		return r.storage.translate(err, "", "")
	}
	return nil
}

func (r *orphanRepository) ListOutstanding(ctx context.Context, limit int) ([]model.OrphanedSession, error) {
	const query = `SELECT id, user_id, amount_total, session_url, reason, created_at
                   FROM orphaned_sessions ORDER BY created_at LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, r.storage.translate(err, "", "")
	}
	defer rows.Close()

	var result []model.OrphanedSession
	for rows.Next() {
		var s model.OrphanedSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.AmountTotal, &s.SessionURL, &s.Reason, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
