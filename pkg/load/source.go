package load

type (
	// SourceKind discriminates the Source union.
	SourceKind string

	// Source is the resolved FROM clause of a file load command. Exactly one
	// of the payload fields is meaningful, selected by Kind.
	Source struct {
		Kind SourceKind

		// Path is the filesystem path for SourceFile
		Path string

		// URL is the opaque resource URL for SourceHTTP. It is not further
		// decomposed; the external reader owns fetching and validation.
		URL string

		// Connection is the decomposed connection for SourceDatabase
		Connection *ConnectionInfo
	}
)

const (
	// SourceStdin reads from standard input
	SourceStdin SourceKind = "stdin"

	// SourceFile reads from a local filesystem path
	SourceFile SourceKind = "file"

	// SourceHTTP fetches an HTTP resource
	SourceHTTP SourceKind = "http"

	// SourceDatabase streams from a database connection
	SourceDatabase SourceKind = "database"
)

// String renders the source the way it is written in command text.
func (s *Source) String() string {
	switch s.Kind {
	case SourceStdin:
		return "stdin"
	case SourceFile:
		return s.Path
	case SourceHTTP:
		return s.URL
	case SourceDatabase:
		return s.Connection.String()
	default:
		return ""
	}
}
