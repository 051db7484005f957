package changelog

// Reporter receives diagnostics about lines the parser tolerates but
// cannot attach to a message: stray continuation-style lines that
// arrive before any bullet in the entry being populated. The parser
// never aborts on such lines; it routes them to AdditionalContent and
// notifies the Reporter.
type Reporter interface {
	MalformedLine(line string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(line string)

// MalformedLine calls f(line).
func (f ReporterFunc) MalformedLine(line string) {
	f(line)
}

// nopReporter is the default: malformed lines are tolerated silently.
type nopReporter struct{}

func (nopReporter) MalformedLine(string) {}
