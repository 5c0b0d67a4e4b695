package fakes

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// Publisher запоминает опубликованные события
type Publisher struct {
	mu sync.Mutex

	Reservations []events.ReservationCreated
	Expansions   []events.ShiftsExpanded
	Archives     []events.EntitiesArchived

	// Err возвращается из каждого вызова, если задана
	Err error
}

// ReservationCreated запоминает событие
func (p *Publisher) ReservationCreated(_ context.Context, e events.ReservationCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Reservations = append(p.Reservations, e)
	return p.Err
}

// ShiftsExpanded запоминает событие
func (p *Publisher) ShiftsExpanded(_ context.Context, e events.ShiftsExpanded) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Expansions = append(p.Expansions, e)
	return p.Err
}

// EntitiesArchived запоминает событие
func (p *Publisher) EntitiesArchived(_ context.Context, e events.EntitiesArchived) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Archives = append(p.Archives, e)
	return p.Err
}
