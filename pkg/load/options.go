package load

import "github.com/noctarius/pgloader/pkg/parser"

// Options is the merged WITH clause of a load command. Integer options are
// pointers so that "not requested" stays distinguishable from zero; boolean
// flags only ever switch behavior on, so absence and false coincide.
//
// Merging is deterministic: options are applied in textual order and a
// repeated key overwrites the earlier value (last one wins).
type Options struct {
	Workers        *int
	BatchRows      *int
	BatchSize      *int
	PrefetchRows   *int
	IncludeDrop    bool
	Truncate       bool
	CreateTables   bool
	CreateIndexes  bool
	ResetSequences bool
}

// apply folds a single parsed option into the set.
func (o *Options) apply(opt *parser.Option) {
	switch {
	case opt.Workers != nil:
		o.Workers = opt.Workers
	case opt.BatchRows != nil:
		o.BatchRows = opt.BatchRows
	case opt.BatchSize != nil:
		o.BatchSize = opt.BatchSize
	case opt.PrefetchRows != nil:
		o.PrefetchRows = opt.PrefetchRows
	case opt.DropTables:
		o.IncludeDrop = true
	case opt.Truncate:
		o.Truncate = true
	case opt.CreateTables:
		o.CreateTables = true
	case opt.CreateIndexes:
		o.CreateIndexes = true
	case opt.ResetSequences:
		o.ResetSequences = true
	}
}

// IsZero reports whether no option was requested.
func (o *Options) IsZero() bool {
	return o.Workers == nil && o.BatchRows == nil && o.BatchSize == nil &&
		o.PrefetchRows == nil && !o.IncludeDrop && !o.Truncate &&
		!o.CreateTables && !o.CreateIndexes && !o.ResetSequences
}
