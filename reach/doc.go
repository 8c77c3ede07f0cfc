// Package reach implements the pointstamp reachability tracker for a cyclic
// dataflow runtime: the subsystem that compiles a graph of operators and
// edges into per-location path summaries, and then maintains, online, the
// set of downstream (location, timestamp) pairs that an in-flight capability
// could still influence.
//
// A caller first populates a Builder with node shapes, per-node internal
// path summaries, and edges, then calls Build to obtain an immutable
// Tracker and the scope-level input-to-output summary. Thereafter the
// caller buffers capability changes with UpdateSource/UpdateTarget, calls
// PropagateAll to drain the buffers and circulate their implications
// through the graph, and reads the results back from Pushed and
// PushedOutput.
//
// The package is deliberately narrow: it knows nothing about how
// capability changes are generated, how timestamps are represented beyond
// the Timestamp and Summary collaborator interfaces, or how progress
// information is communicated between workers. Those are the caller's
// concern.
package reach
