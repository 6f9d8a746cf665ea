package core

import "github.com/pkg/errors"

var ErrInvalidOrdering = errors.New("invalid ordering field")

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// CheckOrderings makes sure every ordering targets one of the allowed fields.
func CheckOrderings(orderings []DBOrdering, allowed ...string) error {
	for _, ord := range orderings {
		var ok bool
		for _, fld := range allowed {
			if ord.Field == fld {
				ok = true
				break
			}
		}
		if !ok {
			return NewValidationError(
				ErrInvalidOrdering,
				FieldError{Field: "ordering", Error: "cannot order by " + ord.Field},
			)
		}
	}
	return nil
}
