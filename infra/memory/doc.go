// Package memory provides the low-level primitives for memory
// management and safe reclamation. It includes a lock-free retire
// ring, a typed object pool, and global epoch tracking used by the
// service layer to retire the writer's trade batches and return them
// to the pool without reallocating on every call.
//
// The memory package is dependency-free and forms the foundation
// for concurrent object reuse and RCU-style epoch advancement. The
// orderbook package itself owns no pooled objects; retired batches go
// back to the pool only while no registered reader (the service's
// snapshot reader) is inside a read section.
package memory
