// Package trace renders the incremental human-readable audit trace.
//
// ConsoleEmitter implements the engine's TraceSink; all styling flows through
// an injected pure StyleFormatter so no process-wide color state exists.
package trace
