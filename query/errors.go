package query

import "fmt"

// RowShapeError reports an INSERT row whose value count does not match the columns.
type RowShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("query: row %d has %d values, want %d", e.Row, e.Got, e.Want)
}
