/*
Package console prints binary search trees to a terminal.

Trees are drawn sideways, with the root at the left margin and the right
subtree above the left one. Turning your head to the left shows the tree in
its usual orientation:

	    ┌── 22
	┌── 20
	│   └── 18
	15
	└── 10

Keys are formatted with %v. Their display width is measured according to
Unicode Annex #11, so wide characters (e.g., CJK) in string keys will not
break the layout. Keys which do not fit into the configured line width are
truncated.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
