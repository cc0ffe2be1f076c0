package load

type (
	// Setting is one session setting (a PostgreSQL GUC) passed through
	// verbatim. No semantic validation of names or values happens here; the
	// executor applies them in order.
	Setting struct {
		Name  string
		Value string
	}

	// Settings preserves the textual order of the SET clause, duplicates
	// included.
	Settings []Setting
)
