package analysis

import (
	"errors"
	"fmt"
)

// Pipeline errors.
var (
	ErrEmptySelection = errors.New("select at least one option")
	ErrNoData         = errors.New("no data for this filter")
	ErrEmptyInput     = errors.New("empty input")
	ErrComputation    = errors.New("computation failed")
)

// Panel identifies one independently rendered view of the dashboard.
type Panel string

// Dashboard panels.
const (
	PanelSeason  Panel = "season"
	PanelHour    Panel = "hour"
	PanelWeather Panel = "weather"
)

// ErrorKind classifies why a panel could not be computed.
type ErrorKind int

// Error kinds, from user-correctable to unexpected.
const (
	KindEmptySelection ErrorKind = iota + 1
	KindNoData
	KindComputation
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptySelection:
		return "empty selection"
	case KindNoData:
		return "no data"
	case KindComputation:
		return "computation"
	default:
		return "unknown"
	}
}

// PanelError is scoped to a single panel; the rest of the dashboard stays usable.
type PanelError struct {
	Err   error
	Panel Panel
	Kind  ErrorKind
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("%s panel: %v", e.Panel, e.Err)
}

func (e *PanelError) Unwrap() error {
	return e.Err
}

// newPanelError derives the kind from the wrapped sentinel.
func newPanelError(panel Panel, err error) *PanelError {
	kind := KindComputation
	switch {
	case errors.Is(err, ErrEmptySelection):
		kind = KindEmptySelection
	case errors.Is(err, ErrNoData), errors.Is(err, ErrEmptyInput):
		kind = KindNoData
	}
	return &PanelError{Panel: panel, Kind: kind, Err: err}
}
