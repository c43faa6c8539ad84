package icu

import (
	"fmt"
	"slices"
)

// Bed is one unit of ICU capacity: either empty, or occupied by a patient
// admitted Days() days ago. The zero value is an empty bed.
type Bed struct {
	days     uint32
	occupied bool
}

// EmptyBed returns a free bed.
func EmptyBed() Bed { return Bed{} }

// OccupiedBed returns a bed whose patient was admitted days ago.
func OccupiedBed(days uint32) Bed { return Bed{days: days, occupied: true} }

// Occupied reports whether a patient is in the bed.
func (b Bed) Occupied() bool { return b.occupied }

// Days returns the days since admission; ok is false for an empty bed.
func (b Bed) Days() (days uint32, ok bool) { return b.days, b.occupied }

func (b Bed) String() string {
	if !b.occupied {
		return "empty"
	}
	return fmt.Sprintf("occupied(%d)", b.days)
}

// Pool is an index-stable, append-only arena of beds. Beds are emptied but
// never removed, so Len never decreases.
type Pool struct {
	beds []Bed
}

// Len returns the number of beds ever allocated.
func (p *Pool) Len() int { return len(p.beds) }

// Bed returns the state of bed i.
func (p *Pool) Bed(i int) Bed { return p.beds[i] }

// Beds returns a copy of every bed state, in index order.
func (p *Pool) Beds() []Bed { return append([]Bed(nil), p.beds...) }

// Occupied counts beds currently holding a patient.
func (p *Pool) Occupied() int {
	n := 0
	for _, b := range p.beds {
		if b.occupied {
			n++
		}
	}
	return n
}

// grow appends n beds, each with a patient admitted today.
func (p *Pool) grow(n int) {
	p.beds = slices.Grow(p.beds, n)
	for ; n > 0; n-- {
		p.beds = append(p.beds, OccupiedBed(0))
	}
}
