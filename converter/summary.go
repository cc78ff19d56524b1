package converter

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Summary describes a finished conversion.
type Summary struct {
	Source      string
	Destination string
	Keys        int
	Skipped     int
}

// String renders the summary as a JSON object with stable key order.
func (s Summary) String() string {
	m := linkedhashmap.New()

	m.Put("source", s.Source)
	m.Put("destination", s.Destination)
	m.Put("keys", s.Keys)
	m.Put("skipped", s.Skipped)

	content, err := m.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v -> %v: %v keys, %v skipped", s.Source, s.Destination, s.Keys, s.Skipped)
	}

	return string(content)
}
