package load

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// TargetSchemeError reports a load command whose target connection is not a
// PostgreSQL database. Targets are validated semantically during command
// assembly; the URI itself parsed fine.
type TargetSchemeError struct {
	URI      string
	Scheme   Scheme
	Position lexer.Position
}

func (e *TargetSchemeError) Error() string {
	return fmt.Sprintf("%s: load target must be a postgresql connection, got %s (%s)",
		e.Position, e.Scheme, e.URI)
}
