package fakes

import (
	"context"
	"errors"
	"sync"
)

type txKey struct{}

// TxManager сериализует транзакции мьютексом и откатывает Store при ошибке.
// Вложенные вызовы присоединяются к внешней транзакции.
type TxManager struct {
	mu    sync.Mutex
	store *Store

	// FailCommits задаёт число следующих коммитов, завершающихся ErrConflict
	FailCommits int
}

// NewTxManager создает менеджер транзакций над хранилищем
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// IsConflict сообщает, что ошибка - имитация конфликта сериализации
func (m *TxManager) IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.store.restore(snap)
		return err
	}

	if m.FailCommits > 0 {
		m.FailCommits--
		m.store.restore(snap)
		return ErrConflict
	}

	return nil
}
