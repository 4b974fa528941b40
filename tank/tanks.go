package tank

import "diveplan/gas"

// Tanks is ordered registry of tanks. The order is the allocation precedence
// and IDs always follow the order.
type Tanks struct {
	items []*Tank
}

func NewTanks(items ...*Tank) *Tanks {
	tanks := &Tanks{}
	for _, item := range items {
		tanks.Add(item)
	}
	return tanks
}

// Add appends the tank and assigns next free ID.
func (ts *Tanks) Add(t *Tank) *Tank {
	ts.items = append(ts.items, t)
	t.ID = len(ts.items)
	return t
}

// Remove keeps at least one tank, the first tank carries the bottom gas.
// Tanks after the removed one are renumbered, so segments referencing them by TankID
// have to be updated with RenumberedID, or they point to a different tank.
func (ts *Tanks) Remove(id int) bool {
	if len(ts.items) <= 1 || id < 1 || id > len(ts.items) {
		return false
	}

	ts.items = append(ts.items[:id-1], ts.items[id:]...)
	ts.renumber()
	return true
}

// RenumberedID maps tank ID valid before removal of the removed tank to its new ID.
// References to the removed tank itself become 0, i.e. unassigned.
func RenumberedID(id, removed int) int {
	switch {
	case id == removed:
		return 0
	case id > removed:
		return id - 1
	default:
		return id
	}
}

func (ts *Tanks) renumber() {
	for index, item := range ts.items {
		item.ID = index + 1
	}
}

func (ts *Tanks) ByID(id int) *Tank {
	if id < 1 || id > len(ts.items) {
		return nil
	}
	return ts.items[id-1]
}

func (ts *Tanks) First() *Tank {
	if len(ts.items) == 0 {
		return nil
	}
	return ts.items[0]
}

// Items returns the ordered tanks, the tanks themselves are shared.
func (ts *Tanks) Items() []*Tank {
	result := make([]*Tank, len(ts.items))
	copy(result, ts.items)
	return result
}

func (ts *Tanks) Len() int {
	return len(ts.items)
}

// Copy creates deep copy keeping the IDs.
func (ts *Tanks) Copy() *Tanks {
	return &Tanks{items: CopyAll(ts.items)}
}

func (ts *Tanks) ResetConsumption() {
	for _, item := range ts.items {
		item.ResetConsumption()
	}
}

func (ts *Tanks) HaveReserve() bool {
	return HaveReserve(ts.items)
}

// Gases one entry per tank, duplicates included.
func (ts *Tanks) Gases() *gas.Gases {
	return GasesOf(ts.items)
}

// CopyAll creates deep copy of the tanks keeping their order and IDs.
func CopyAll(tanks []*Tank) []*Tank {
	result := make([]*Tank, 0, len(tanks))
	for _, item := range tanks {
		result = append(result, item.Copy())
	}
	return result
}

func HaveReserve(tanks []*Tank) bool {
	for _, item := range tanks {
		if !item.HasReserve() {
			return false
		}
	}
	return true
}

func GasesOf(tanks []*Tank) *gas.Gases {
	gases := gas.NewGases()
	for _, item := range tanks {
		gases.Add(item.Gas)
	}
	return gases
}
