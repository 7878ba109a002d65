// Package firestore stores users, registrations and members as Cloud
// Firestore documents.
package firestore

import (
	"context"
	"errors"
	"fmt"

	gfs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/lubana/membership/internal/membership/store"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	colUsers         = "users"
	colUsernames     = "usernames"
	colRegistrations = "registrations"
	colMembers       = "members"
)

type Config struct {
	ProjectID string
	// CredentialsFile is a service account JSON key. It may be empty when
	// running against the emulator or with ambient credentials.
	CredentialsFile string
}

type Store struct {
	client *gfs.Client
}

var _ store.Store = (*Store)(nil)

// NewStore initialises a Firebase app and its Firestore client.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: init firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore: client: %w", err)
	}
	return &Store{client: client}, nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *gfs.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collection(colUsers).Limit(1).Documents(ctx).GetAll()
	return err
}

// ApplyMigrations is a no-op; collections are created on first write.
func (s *Store) ApplyMigrations() error { return nil }

// WithTx runs fn inside a Firestore transaction. Firestore may call fn
// more than once when the transaction is contended.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *gfs.Transaction) error {
		return fn(repos{client: s.client, sess: &txSession{tx: tx}})
	})
	return mapErr(err)
}

func (s *Store) repos() repos {
	return repos{client: s.client, sess: &clientSession{client: s.client}}
}

func (s *Store) Users() store.Users                 { return s.repos().Users() }
func (s *Store) Registrations() store.Registrations { return s.repos().Registrations() }
func (s *Store) Members() store.Members             { return s.repos().Members() }

type repos struct {
	client *gfs.Client
	sess   session
}

func (r repos) Users() store.Users                 { return &usersRepo{repos: r} }
func (r repos) Registrations() store.Registrations { return &registrationsRepo{repos: r} }
func (r repos) Members() store.Members             { return &membersRepo{repos: r} }

// session abstracts over plain client calls and calls inside a
// transaction, so one repository implementation serves both.
type session interface {
	get(ctx context.Context, ref *gfs.DocumentRef) (*gfs.DocumentSnapshot, error)
	query(ctx context.Context, q gfs.Query) ([]*gfs.DocumentSnapshot, error)
	create(ctx context.Context, ref *gfs.DocumentRef, data any) error
	update(ctx context.Context, ref *gfs.DocumentRef, updates []gfs.Update) error
	// atomically runs fn in a transaction, joining the current one if any.
	atomically(ctx context.Context, fn func(session) error) error
}

type clientSession struct {
	client *gfs.Client
}

func (c *clientSession) get(ctx context.Context, ref *gfs.DocumentRef) (*gfs.DocumentSnapshot, error) {
	return ref.Get(ctx)
}

func (c *clientSession) query(ctx context.Context, q gfs.Query) ([]*gfs.DocumentSnapshot, error) {
	return q.Documents(ctx).GetAll()
}

func (c *clientSession) create(ctx context.Context, ref *gfs.DocumentRef, data any) error {
	_, err := ref.Create(ctx, data)
	return err
}

func (c *clientSession) update(ctx context.Context, ref *gfs.DocumentRef, updates []gfs.Update) error {
	_, err := ref.Update(ctx, updates)
	return err
}

func (c *clientSession) atomically(ctx context.Context, fn func(session) error) error {
	return c.client.RunTransaction(ctx, func(ctx context.Context, tx *gfs.Transaction) error {
		return fn(&txSession{tx: tx})
	})
}

type txSession struct {
	tx *gfs.Transaction
}

func (t *txSession) get(_ context.Context, ref *gfs.DocumentRef) (*gfs.DocumentSnapshot, error) {
	return t.tx.Get(ref)
}

func (t *txSession) query(_ context.Context, q gfs.Query) ([]*gfs.DocumentSnapshot, error) {
	return t.tx.Documents(q).GetAll()
}

func (t *txSession) create(_ context.Context, ref *gfs.DocumentRef, data any) error {
	return t.tx.Create(ref, data)
}

func (t *txSession) update(_ context.Context, ref *gfs.DocumentRef, updates []gfs.Update) error {
	return t.tx.Update(ref, updates)
}

func (t *txSession) atomically(_ context.Context, fn func(session) error) error {
	return fn(t)
}

// mapErr translates gRPC status codes into store errors, leaving anything
// already carrying a store error untouched.
func mapErr(err error) error {
	if err == nil ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrAlreadyExists) ||
		errors.Is(err, store.ErrConflict) {
		return err
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	}
	return err
}

func paginate[T any](items []T, page store.Page) []T {
	page = page.Normalize()
	if page.Offset >= len(items) {
		return nil
	}
	end := min(page.Offset+page.Limit, len(items))
	return items[page.Offset:end]
}
