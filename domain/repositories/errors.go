package repositories

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// AllValues is the list-filter sentinel meaning "no filter"
const AllValues = "all"

// IsFilterSet reports whether a list filter value should restrict the query
func IsFilterSet(v string) bool {
	return v != "" && v != AllValues
}
