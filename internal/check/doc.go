// Package check provides assertions that are active only in builds tagged
// `debug` and compile to no-ops otherwise. chirpd uses them to pin wiring
// invariants at construction time: the server's store and registry and the
// heartbeat monitor's respawner must never be nil.
package check
