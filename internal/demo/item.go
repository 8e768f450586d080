package demo

import (
	"strconv"
	"strings"

	"github.com/sirkon/errors"
)

// Item запись с идентификатором и именем.
type Item struct {
	ID   int
	Name string
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(strconv.Itoa(i.ID))
	b.WriteString(", ")
	b.WriteString(i.Name)
	b.WriteByte('}')
	return b.String()
}

// DefaultItems набор записей по умолчанию.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 1, Name: "Alice"},
		{ID: 3, Name: "Carol"},
		{ID: 2, Name: "Bob"},
	}
}

// ParseItem разбор записи в формате id:name.
func ParseItem(s string) (Item, error) {
	id, name, ok := strings.Cut(s, ":")
	if !ok {
		return Item{}, errors.New("missing id and name separator").Str("item", s)
	}

	v, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Item{}, errors.Wrap(err, "parse item id").Str("item", s)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errors.New("empty item name").Str("item", s)
	}

	return Item{
		ID:   v,
		Name: name,
	}, nil
}

// ParseItems разбор набора записей.
func ParseItems(src []string) ([]Item, error) {
	res := make([]Item, 0, len(src))
	for i, s := range src {
		item, err := ParseItem(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parse item no %d", i)
		}

		res = append(res, item)
	}

	return res, nil
}
