package entity

import "time"

// Course representa un curso de capacitación. Referencia una plantilla de
// checklist; sus ítems de checklist se eliminan en cascada junto al curso.
type Course struct {
	ID          string
	Name        string
	Type        string // Primeros Auxilios, Prevención de Riesgos, Evacuación, Otro
	Date        time.Time
	Place       string
	Attendees   int
	Responsible string
	Active      bool
	TemplateID  string // opcional
	CreatedAt   time.Time
}
