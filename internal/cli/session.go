package cli

import (
	"log/slog"

	"github.com/calvinalkan/wedlinker/internal/config"
	"github.com/calvinalkan/wedlinker/internal/model"
	"github.com/calvinalkan/wedlinker/internal/storage"
)

// session owns the loaded book for one command or one shell run. The data
// file is loaded on first use and its lock is held until close.
type session struct {
	cfg   *config.Config
	log   *slog.Logger
	store *storage.Store
	lock  *storage.Lock
	mgr   *model.Manager
	saved int
}

func newSession(cfg *config.Config, log *slog.Logger) *session {
	return &session{
		cfg:   cfg,
		log:   log,
		store: storage.New(cfg.DataFileAbs, log),
	}
}

// manager returns the manager of the loaded book, loading it if needed.
func (s *session) manager(o *IO) (*model.Manager, error) {
	if s.mgr != nil {
		return s.mgr, nil
	}

	lock, err := storage.AcquireLock(s.store.Path())
	if err != nil {
		return nil, err
	}

	book, exists, err := s.store.Load()
	if err != nil {
		lock.Release()

		return nil, err
	}

	if !exists {
		if s.cfg.UseSampleData() {
			book = model.SampleBook()
			o.Warn("data file not found", "starting with sample data, it is saved on the first change")
		} else {
			book = model.NewBook()
		}
	}

	s.lock = lock
	s.mgr = model.NewManager(book)
	s.saved = book.Revision()

	return s.mgr, nil
}

// book is a shorthand for commands that do not care about the filter.
func (s *session) book(o *IO) (*model.Book, error) {
	m, err := s.manager(o)
	if err != nil {
		return nil, err
	}

	return m.Book(), nil
}

// commit saves the book if it changed since the last load or save.
func (s *session) commit() error {
	if s.mgr == nil || s.mgr.Book().Revision() == s.saved {
		return nil
	}

	if err := s.store.Save(s.mgr.Book()); err != nil {
		return err
	}

	s.saved = s.mgr.Book().Revision()

	return nil
}

func (s *session) close() {
	s.lock.Release()
	s.lock = nil
}
