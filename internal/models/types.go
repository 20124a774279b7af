package models

import (
	"errors"
	"fmt"
	"sort"
)

// SortKey selects the ordering applied to search results
type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortName      SortKey = "name"

	// DefaultSortKey is used when the caller does not ask for an ordering
	DefaultSortKey = SortName
)

// ErrInvalidSortKey is returned by ParseSortKey for unknown values
var ErrInvalidSortKey = errors.New("invalid sort key")

// IsValid reports whether the key is one of the supported orderings
func (s SortKey) IsValid() bool {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortName:
		return true
	default:
		return false
	}
}

// String returns the wire value of the sort key
func (s SortKey) String() string {
	return string(s)
}

// ParseSortKey converts a query value into a SortKey
func ParseSortKey(value string) (SortKey, error) {
	if err := ValidateEnum(value, SortKeys(), "sort"); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidSortKey, value, err)
	}

	return SortKey(value), nil
}

// SortKeys returns the supported sort keys in alphabetical order
func SortKeys() []string {
	keys := []string{string(SortPriceAsc), string(SortPriceDesc), string(SortName)}
	sort.Strings(keys)
	return keys
}
