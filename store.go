package bankroll

import (
	"context"
	"errors"
	"strings"

	"github.com/etnz/bankroll/kv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Keys of the persisted state.
const (
	BetsKey     = "bets_v1"
	BankrollKey = "bankroll_initial_v1"
)

// Store owns the ledger and writes every mutation through to a key-value
// store.
//
// Persistence is fire-and-forget: a failed write is logged and the
// in-memory ledger stays authoritative, so the mutation still takes effect
// for the lifetime of the Store.
//
// A Store is not safe for concurrent use.
type Store struct {
	kv          kv.Store
	log         zerolog.Logger
	ledger      Ledger
	subscribers []func(Ledger)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. It defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open creates a Store on top of s and loads the persisted ledger.
func Open(ctx context.Context, s kv.Store, opts ...Option) *Store {
	st := &Store{kv: s, log: log.Logger, ledger: NewLedger()}
	for _, opt := range opts {
		opt(st)
	}
	st.Load(ctx)
	return st
}

// Ledger returns the current ledger.
func (s *Store) Ledger() Ledger { return s.ledger }

// Subscribe registers fn to be called with the new ledger after every change.
func (s *Store) Subscribe(fn func(Ledger)) {
	s.subscribers = append(s.subscribers, fn)
}

// Load reads the persisted ledger. It never fails: missing or corrupt bets
// give an empty ledger, a missing or corrupt bankroll gives the default one.
func (s *Store) Load(ctx context.Context) Ledger {
	l := NewLedger()
	l.bets = s.loadBets(ctx)
	if v, ok := s.loadBankroll(ctx); ok {
		l.initial = v
	}
	s.set(l)
	return l
}

func (s *Store) loadBets(ctx context.Context) []Bet {
	raw, err := s.kv.Get(ctx, BetsKey)
	if errors.Is(err, kv.ErrNotFound) || (err == nil && raw == "") {
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", BetsKey).Msg("could not read bets, starting empty")
		return nil
	}
	bets, err := DecodeBets(strings.NewReader(raw))
	if err != nil {
		s.log.Debug().Err(err).Str("key", BetsKey).Int("kept", len(bets)).Msg("discarded corrupt bets")
	}
	return bets
}

func (s *Store) loadBankroll(ctx context.Context) (v decimal.Decimal, ok bool) {
	raw, err := s.kv.Get(ctx, BankrollKey)
	if errors.Is(err, kv.ErrNotFound) || (err == nil && raw == "") {
		return v, false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", BankrollKey).Msg("could not read bankroll, using default")
		return v, false
	}
	v, err = DecodeBankroll(raw)
	if err != nil {
		s.log.Debug().Err(err).Str("key", BankrollKey).Msg("discarded corrupt bankroll")
		return v, false
	}
	return v, true
}

// Append adds b at the head of the ledger. An invalid bet or an id already
// in the ledger is refused and nothing changes.
func (s *Store) Append(ctx context.Context, b Bet) (Ledger, error) {
	l, err := s.ledger.Append(b)
	if err != nil {
		return s.ledger, err
	}
	s.set(l)
	s.saveBets(ctx)
	return l, nil
}

// Import appends the bets whose id is not in the ledger yet, keeping their
// relative order at the head of the ledger. It returns the number of bets
// added.
func (s *Store) Import(ctx context.Context, bets []Bet) (Ledger, int) {
	l := s.ledger
	added := 0
	for i := len(bets) - 1; i >= 0; i-- {
		next, err := l.Append(bets[i])
		if err != nil {
			s.log.Debug().Err(err).Msg("skipped imported bet")
			continue
		}
		l = next
		added++
	}
	if added > 0 {
		s.set(l)
		s.saveBets(ctx)
	}
	return s.ledger, added
}

// Remove deletes the bet with this id. An unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) Ledger {
	if _, ok := s.ledger.Bet(id); !ok {
		return s.ledger
	}
	s.set(s.ledger.Remove(id))
	s.saveBets(ctx)
	return s.ledger
}

// Clear deletes all bets. Asking the user for confirmation is up to the
// caller.
func (s *Store) Clear(ctx context.Context) Ledger {
	s.set(s.ledger.Clear())
	s.saveBets(ctx)
	return s.ledger
}

// SetInitialBankroll replaces the initial bankroll. NaN and infinities are
// stored as 0.
func (s *Store) SetInitialBankroll(ctx context.Context, v float64) Ledger {
	s.set(s.ledger.WithInitialBankroll(v))
	s.saveBankroll(ctx)
	return s.ledger
}

// Save writes the whole ledger, bets and bankroll.
func (s *Store) Save(ctx context.Context) error {
	var b strings.Builder
	if err := EncodeBets(&b, s.ledger.bets); err != nil {
		return err
	}
	return errors.Join(
		s.kv.Set(ctx, BetsKey, b.String()),
		s.kv.Set(ctx, BankrollKey, EncodeBankroll(s.ledger.initial)),
	)
}

func (s *Store) saveBets(ctx context.Context) {
	var b strings.Builder
	err := EncodeBets(&b, s.ledger.bets)
	if err == nil {
		err = s.kv.Set(ctx, BetsKey, b.String())
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", BetsKey).Msg("could not persist bets, keeping them in memory")
	}
}

func (s *Store) saveBankroll(ctx context.Context) {
	if err := s.kv.Set(ctx, BankrollKey, EncodeBankroll(s.ledger.initial)); err != nil {
		s.log.Warn().Err(err).Str("key", BankrollKey).Msg("could not persist bankroll, keeping it in memory")
	}
}

func (s *Store) set(l Ledger) {
	s.ledger = l
	for _, fn := range s.subscribers {
		fn(l)
	}
}
