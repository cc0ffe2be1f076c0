// Package syslog holds the fixed registry of built-in syslog ABNF grammars
// and the grammar spec produced by the command language's GRAMMAR clause.
//
// A GrammarSpec names a base grammar (rsyslog, syslog, or syslog-draft-15),
// carries verbatim extension text, and lists the named productions whose
// matches become extracted message fields. Combined appends the extension to
// the base text with a blank-line separator; the resulting document is fed to
// an external ABNF-to-parser compiler, which is out of scope here.
//
// Unknown base grammar names are a hard error (UnknownGrammarError) rather
// than a silent fallback to an empty base grammar.
package syslog
