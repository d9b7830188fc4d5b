package bubble

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug-mode diagnostics. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// globalDebug mirrors the most recently set Scene debug flag so that code
// without a Scene pointer can check it cheaply. Only valid with a single
// Scene.
var globalDebug bool

// debugf prints a diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[bubble] "+format+"\n", args...)
}

// debugError reports err when debug mode is on. Release builds drop it.
func debugError(err error) {
	debugf("error: %v", err)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("bubble debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
