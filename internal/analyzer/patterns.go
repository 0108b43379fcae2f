package analyzer

import "regexp"

var (
	// logCallPattern matches a line opening a log macro invocation, e.g.
	// `trace!("...")` or `warn!(` continued on the next line.
	logCallPattern = regexp.MustCompile(`^\s*(trace|debug|info|warn|error)!\s*\(`)

	// placeholderPattern matches a format placeholder like `{}` or `{x:?}`.
	// Any non-nested brace span counts, so literal braces inside string
	// content can match too; see the known-limitation notes in the tests.
	placeholderPattern = regexp.MustCompile(`\{[^}]*\}`)

	// guardOpenPattern matches the opening line of a level guard:
	// `if log::log_enabled!(log::Level::Trace) {` (the `log::` prefix on
	// the macro is optional).
	guardOpenPattern = regexp.MustCompile(`if\s+(log::)?log_enabled!\s*\(\s*log::Level::(\w+)\s*\)`)
)
