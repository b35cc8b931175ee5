package trip

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Categories maps category names to amounts while remembering insertion order.
// The zero value is an empty, usable set. Methods never modify the receiver;
// every change returns a new Categories value.
type Categories struct {
	names  []string
	values map[string]decimal.Decimal
}

// NewCategories builds a Categories from the given pairs, in order.
func NewCategories(pairs ...Amount) Categories {
	var c Categories
	for _, p := range pairs {
		c = c.With(p.Category, p.Value)
	}
	return c
}

// Amount is a single category/value pair.
type Amount struct {
	Category string
	Value    decimal.Decimal
}

// Names returns the category names in insertion order.
func (c Categories) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of categories.
func (c Categories) Len() int {
	return len(c.names)
}

// Has reports whether name is present.
func (c Categories) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Get returns the amount stored for name.
func (c Categories) Get(name string) (decimal.Decimal, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Amounts returns every pair in insertion order.
func (c Categories) Amounts() []Amount {
	out := make([]Amount, len(c.names))
	for i, n := range c.names {
		out[i] = Amount{Category: n, Value: c.values[n]}
	}
	return out
}

func (c Categories) clone() Categories {
	out := Categories{
		names:  slices.Clone(c.names),
		values: make(map[string]decimal.Decimal, len(c.values)),
	}
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}

// With sets name to value. A new name is appended; an existing one keeps its position.
func (c Categories) With(name string, value decimal.Decimal) Categories {
	out := c.clone()
	if _, ok := out.values[name]; !ok {
		out.names = append(out.names, name)
	}
	out.values[name] = value
	return out
}

// Without removes name. Removing a missing name returns an equal copy.
func (c Categories) Without(name string) Categories {
	out := c.clone()
	if _, ok := out.values[name]; !ok {
		return out
	}
	delete(out.values, name)
	out.names = slices.DeleteFunc(out.names, func(n string) bool { return n == name })
	return out
}

// Rekey moves the value stored under from to to. When to does not exist yet it
// takes from's position; when it does, its value is overwritten and from is dropped.
func (c Categories) Rekey(from, to string) Categories {
	v, ok := c.values[from]
	if !ok || from == to {
		return c.clone()
	}

	if _, exists := c.values[to]; exists {
		return c.Without(from).With(to, v)
	}

	out := c.clone()
	delete(out.values, from)
	out.values[to] = v
	out.names[slices.Index(out.names, from)] = to
	return out
}

// Equal reports whether both sets hold the same names in the same order with equal amounts.
func (c Categories) Equal(other Categories) bool {
	if !slices.Equal(c.names, other.names) {
		return false
	}
	for _, n := range c.names {
		if !c.values[n].Equal(other.values[n]) {
			return false
		}
	}
	return true
}

// Total sums every amount.
func (c Categories) Total() decimal.Decimal {
	total := decimal.Zero
	for _, n := range c.names {
		total = total.Add(c.values[n])
	}
	return total
}

// MarshalJSON writes the categories as a JSON object, keys in insertion order and
// amounts as bare numbers.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(c.values[n].String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order of the document.
func (c *Categories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("categories: expected a JSON object")
	}

	var out Categories
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("categories: unexpected key %v", tok)
		}

		var raw json.Number
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("categories: value for %q: %w", name, err)
		}
		value, err := decimal.NewFromString(raw.String())
		if err != nil {
			return fmt.Errorf("categories: value for %q: %w", name, err)
		}
		out = out.With(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}
