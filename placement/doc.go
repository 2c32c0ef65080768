// Package placement provides the hash-with-rehash placement resolver.
//
// Rehash maps a request identity to a server slot by hashing it and reducing
// the hash modulo the pool size. When the chosen slot is full it rehashes a
// perturbed key ("<id>_retry<k>") and tries again, up to a fixed number of
// attempts (default 10). Previously probed slots are not excluded, so a
// request may land on the same full slot more than once.
//
// Exhaustion is reported in-band as a FAILED outcome with server "none"; it
// never aborts the surrounding batch.
//
// Custom resolvers can be implemented by satisfying the types.PlacementResolver interface.
package placement
