package load

type (
	// CastRule is a declarative instruction mapping a source column or type
	// to a target type plus optional default/not-null adjustments and a named
	// transform. Exactly one of Column or Type is set.
	//
	// The Transform name is carried as a plain string and resolved against
	// the transform registry at execution time only; an unresolvable name is
	// not a parse error.
	CastRule struct {
		Column             *string
		Type               *string
		AutoIncrementExtra bool
		TargetType         *string
		DropDefault        bool
		DropNotNull        bool
		Transform          *string
	}

	// CastRules preserves rule order. Order is significant: the first rule
	// matching a table column is the one applied by the external engine.
	CastRules []*CastRule
)
