package flights

import (
	"errors"
	"fmt"
	"time"
)

// InvalidDateError reports a date string that is not YYYY-MM-DD.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Input)
}

// InvalidRangeError reports a search window whose start falls after its end.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Start.Format(DateLayout), e.End.Format(DateLayout))
}

// ProviderError wraps any failure raised by the external flight-data source.
// Kind is a stable short tag (e.g. "http_status", "decode") used to
// deduplicate error summaries in range sweeps.
type ProviderError struct {
	Kind string
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s failed (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s failed (%s)", e.Op, e.Kind)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ErrorKind extracts the summary tag from err. Provider errors report their
// Kind; anything else is tagged "error".
func ErrorKind(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return "error"
}
