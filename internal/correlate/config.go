package correlate

// ContextTemplate is the decoded configuration form the correlator
// consumes: a name, its closing Conditions, the participating pattern
// uuids, and the Actions to run when an instance closes. The correlator
// clones a fresh runtime Context from a template each time a message
// opens a new correlation window.
type ContextTemplate struct {
	Name       string
	Conditions Conditions
	Patterns   []string
	Actions    []ActionSpec

	// KeyFields names value fields (bound by the trie's parsers, or
	// carried on the raw incoming message) whose values, together,
	// distinguish one concurrent correlation window from another under
	// this template.
	//
	// This is a deliberate resolution of an open point in the
	// specification: §4.6 describes a context-key "hash of the opening
	// message's uuid and any template-declared key fields" without
	// defining what a key field is. The reference implementation
	// (original_source/src/bin/test.rs) only ever keeps a single Context
	// per template, reused in place — so an empty KeyFields, the
	// zero-value default, reproduces that exact behavior: at most one
	// concurrent open instance per template. A non-empty KeyFields opts
	// into multiple concurrent windows per template, one per distinct
	// combination of field values (e.g. correlating per "session" or
	// "host"). See DESIGN.md.
	KeyFields []string
}
