package entity

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"
)

type SortField string

const (
	SortByDate   SortField = "date"
	SortByClient SortField = "client"
	SortByPhone  SortField = "phone"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByDate, SortByClient, SortByPhone:
		return true
	}

	return false
}

// Order is the journal ordering: priority first (unless disabled),
// then Field, then id to keep the result deterministic.
type Order struct {
	Field         SortField
	Desc          bool
	PriorityFirst bool
}

func DefaultOrder() Order {
	return Order{Field: SortByDate, Desc: true, PriorityFirst: true}
}

// ParseOrder parses keys like "date" or "-client". Empty key gives DefaultOrder.
func ParseOrder(key string) (Order, error) {
	order := DefaultOrder()

	key = strings.TrimSpace(key)
	if key == "" {
		return order, nil
	}

	order.Desc = strings.HasPrefix(key, "-")
	order.Field = SortField(strings.TrimPrefix(key, "-"))

	if !order.Field.IsValid() {
		return Order{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidArgument, key)
	}

	return order, nil
}

func (o Order) String() string {
	if o.Desc {
		return "-" + string(o.Field)
	}

	return string(o.Field)
}

// Compare orders two records. It returns a negative number when a goes before b.
func (o Order) Compare(a, b JournalRecord) int {
	if o.PriorityFirst && a.IsPriority != b.IsPriority {
		if a.IsPriority {
			return -1
		}

		return 1
	}

	var c int

	switch o.Field {
	case SortByClient:
		c = compareLast(clientName(a), clientName(b), o.Desc)
	case SortByPhone:
		c = compareLast(a.Phone, b.Phone, o.Desc)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
		if o.Desc {
			c = -c
		}
	}

	if c != 0 {
		return c
	}

	return bytes.Compare(a.ID.Bytes(), b.ID.Bytes())
}

// compareLast compares strings in the requested direction, empty values always last.
func compareLast(a, b string, desc bool) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	c := cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	if desc {
		return -c
	}

	return c
}

func clientName(r JournalRecord) string {
	if r.Client == nil {
		return ""
	}

	return r.Client.Name
}
