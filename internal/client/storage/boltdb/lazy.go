package boltdb

import (
	"context"
	"sync"

	"github.com/iudanet/gophershop/internal/client/storage"
)

// Lazy открывает файл сессии при первом обращении.
// bbolt держит эксклюзивную блокировку файла, пока он открыт: команды,
// которым сессия не нужна (например, долгий favorites watch), не мешают
// другим процессам клиента.
type Lazy struct {
	st     *Storage
	path   string
	mu     sync.Mutex
	closed bool
}

var _ storage.SessionStorage = (*Lazy)(nil)

// NewLazy запоминает путь; файл не открывается до первой операции
func NewLazy(dbPath string) *Lazy {
	return &Lazy{path: dbPath}
}

// open возвращает открытое хранилище, открывая его при необходимости.
// Ошибка открытия не запоминается: следующая операция попробует снова.
func (l *Lazy) open(ctx context.Context) (*Storage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, storage.ErrStorageClosed
	}
	if l.st == nil {
		st, err := New(ctx, l.path)
		if err != nil {
			return nil, err
		}
		l.st = st
	}
	return l.st, nil
}

// Opened сообщает, был ли файл уже открыт
func (l *Lazy) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.st != nil
}

// SaveSession opens the database if needed and stores the session
func (l *Lazy) SaveSession(ctx context.Context, session *storage.Session) error {
	st, err := l.open(ctx)
	if err != nil {
		return err
	}
	return st.SaveSession(ctx, session)
}

// GetSession opens the database if needed and reads the session
func (l *Lazy) GetSession(ctx context.Context) (*storage.Session, error) {
	st, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	return st.GetSession(ctx)
}

// DeleteSession opens the database if needed and removes the session
func (l *Lazy) DeleteSession(ctx context.Context) error {
	st, err := l.open(ctx)
	if err != nil {
		return err
	}
	return st.DeleteSession(ctx)
}

// Close releases the file lock if the database was opened.
// Later operations return storage.ErrStorageClosed.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.st == nil {
		return nil
	}
	err := l.st.Close()
	l.st = nil
	return err
}
