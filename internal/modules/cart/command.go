package cart

import "fmt"

// State is the cart's full in-memory state. Item count and subtotal are
// always derived from Items; nothing else counts.
type State struct {
	Items []LineItem
	Open  bool
	Ready bool
	Err   string
}

// ItemCount is the sum of line quantities.
func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price x quantity over the lines.
func (s State) Subtotal() float64 {
	total := 0.0
	for _, it := range s.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s State) find(k Key) int {
	for i, it := range s.Items {
		if it.Key() == k {
			return i
		}
	}
	return -1
}

// Options tunes transition behavior.
type Options struct {
	// EnforceCeilingOnUpdate extends the add-path quantity guard to
	// explicit quantity updates. Off by default: an update historically
	// bypasses the ceiling.
	EnforceCeilingOnUpdate bool
}

// Command is the tagged-variant mutation set.
type Command interface{ isCommand() }

type AddItem struct {
	Item     LineItem
	Quantity int // <= 0 means 1
}

type RemoveItem struct{ Key Key }

type UpdateQuantity struct {
	Key      Key
	Quantity int // <= 0 removes the line
}

type Clear struct{}
type OpenPanel struct{}
type ClosePanel struct{}
type TogglePanel struct{}
type ClearError struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}
func (OpenPanel) isCommand()      {}
func (ClosePanel) isCommand()     {}
func (TogglePanel) isCommand()    {}
func (ClearError) isCommand()     {}

// reduce is the pure state-transition function. It never mutates its input;
// the returned bool reports whether the item list changed (the signal to
// persist).
func reduce(s State, cmd Command, opt Options) (State, bool) {
	switch c := cmd.(type) {
	case AddItem:
		qty := c.Quantity
		if qty <= 0 {
			qty = 1
		}

		if i := s.find(c.Item.Key()); i >= 0 {
			newQty := s.Items[i].Quantity + qty
			if max := c.Item.ceiling(); newQty > max {
				// Reject, never clamp: the stored quantity stays put.
				s.Err = fmt.Sprintf("Cannot add more than %d items of this product", max)
				return s, false
			}
			items := cloneItems(s.Items)
			items[i].Quantity = newQty
			s.Items, s.Err = items, ""
			return s, true
		}

		if max := c.Item.ceiling(); qty > max {
			s.Err = fmt.Sprintf("Cannot add more than %d items of this product", max)
			return s, false
		}
		item := c.Item
		item.Quantity = qty
		s.Items = append(cloneItems(s.Items), item)
		s.Err = ""
		return s, true

	case RemoveItem:
		i := s.find(c.Key)
		if i < 0 {
			// Absent line: a no-op, not an error.
			s.Err = ""
			return s, false
		}
		items := cloneItems(s.Items)
		s.Items = append(items[:i], items[i+1:]...)
		s.Err = ""
		return s, true

	case UpdateQuantity:
		if c.Quantity <= 0 {
			return reduce(s, RemoveItem{Key: c.Key}, opt)
		}
		i := s.find(c.Key)
		if i < 0 {
			s.Err = ""
			return s, false
		}
		if opt.EnforceCeilingOnUpdate {
			if max := s.Items[i].ceiling(); c.Quantity > max {
				s.Err = fmt.Sprintf("Cannot add more than %d items of this product", max)
				return s, false
			}
		}
		items := cloneItems(s.Items)
		items[i].Quantity = c.Quantity
		s.Items, s.Err = items, ""
		return s, true

	case Clear:
		s.Items, s.Err = nil, ""
		return s, true

	case OpenPanel:
		s.Open = true
		return s, false

	case ClosePanel:
		s.Open = false
		return s, false

	case TogglePanel:
		s.Open = !s.Open
		return s, false

	case ClearError:
		s.Err = ""
		return s, false

	default:
		return s, false
	}
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
