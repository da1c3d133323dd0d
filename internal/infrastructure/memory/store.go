// Package memory implementa los puertos de persistencia sobre estado en
// memoria, con un único escritor lógico. Es el backend de demo y el arnés de
// los tests de casos de uso; es intercambiable con el adaptador PostgreSQL
// vía configuración.
package memory

import (
	"context"
	"sync"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// dataset es el estado completo del store. Las transacciones trabajan sobre
// un clon y lo promueven al confirmar, así un error a mitad de camino no deja
// escrituras parciales.
type dataset struct {
	inventory   map[string]*entity.InventoryRecord
	movements   []*entity.Movement
	movementSeq int64
	templates   map[string]*entity.ChecklistTemplate
	items       map[string]*entity.ChecklistItem
	itemOrder   []string // orden de inserción para listados estables
	courses     map[string]*entity.Course
}

func newDataset() *dataset {
	return &dataset{
		inventory: make(map[string]*entity.InventoryRecord),
		templates: make(map[string]*entity.ChecklistTemplate),
		items:     make(map[string]*entity.ChecklistItem),
		courses:   make(map[string]*entity.Course),
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		inventory:   make(map[string]*entity.InventoryRecord, len(d.inventory)),
		movements:   make([]*entity.Movement, len(d.movements)),
		movementSeq: d.movementSeq,
		templates:   make(map[string]*entity.ChecklistTemplate, len(d.templates)),
		items:       make(map[string]*entity.ChecklistItem, len(d.items)),
		itemOrder:   append([]string(nil), d.itemOrder...),
		courses:     make(map[string]*entity.Course, len(d.courses)),
	}
	for sku, rec := range d.inventory {
		cp := *rec
		c.inventory[sku] = &cp
	}
	for i, mov := range d.movements {
		cp := *mov
		c.movements[i] = &cp
	}
	for id, tpl := range d.templates {
		cp := *tpl
		cp.Lines = append([]entity.TemplateLine(nil), tpl.Lines...)
		c.templates[id] = &cp
	}
	for id, item := range d.items {
		cp := *item
		c.items[id] = &cp
	}
	for id, course := range d.courses {
		cp := *course
		c.courses[id] = &cp
	}
	return c
}

// Store es el backend en memoria. Implementa los TxRunner de inventario y
// checklist serializando cada transacción bajo el mutex: el chequeo de stock
// y la escritura se observan como una unidad.
type Store struct {
	mu sync.Mutex
	ds *dataset
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{ds: newDataset()}
}

// InventoryRepository devuelve el adaptador de inventario atado al store.
func (s *Store) InventoryRepository() repository.InventoryRepository {
	return &inventoryRepo{s: s}
}

// MovementRepository devuelve el adaptador del libro de movimientos.
func (s *Store) MovementRepository() repository.MovementRepository {
	return &movementRepo{s: s}
}

// TemplateRepository devuelve el adaptador de plantillas de usuario.
func (s *Store) TemplateRepository() repository.TemplateRepository {
	return &templateRepo{s: s}
}

// ChecklistItemRepository devuelve el adaptador de ítems de checklist.
func (s *Store) ChecklistItemRepository() repository.ChecklistItemRepository {
	return &checklistItemRepo{s: s}
}

// CourseRepository devuelve el adaptador de cursos.
func (s *Store) CourseRepository() repository.CourseRepository {
	return &courseRepo{s: s}
}

// Run ejecuta fn sobre un clon del estado y lo promueve solo si fn retorna
// nil. Implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.ds.clone()
	if err := fn(&inventoryRepo{ds: staged}, &movementRepo{ds: staged}); err != nil {
		return err
	}
	s.ds = staged
	return nil
}

// RunChecklist igual que Run, con el repositorio de checklist incluido.
// Implementa checklist.TxRunner.
func (s *Store) RunChecklist(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	itemRepo repository.ChecklistItemRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.ds.clone()
	if err := fn(&inventoryRepo{ds: staged}, &movementRepo{ds: staged}, &checklistItemRepo{ds: staged}); err != nil {
		return err
	}
	s.ds = staged
	return nil
}

// acquire resuelve el dataset a usar: el clon de la tx en curso (sin lock,
// el mutex ya lo tiene la tx) o el estado vivo bajo lock.
func acquire(s *Store, ds *dataset) (*dataset, func()) {
	if ds != nil {
		return ds, func() {}
	}
	s.mu.Lock()
	return s.ds, s.mu.Unlock
}
