// Package qrfs implements the Queued Remote Filesystem Coordinator: a
// concurrency layer in front of a remotefs.RemoteFs that serializes,
// deduplicates, and verifies upload/download/delete operations on behalf of
// a local-cache-backed storage engine.
//
// Callers synchronously await each operation. Internally, Coordinator
// multiplexes requests across bounded worker pools, enforces size-integrity
// on both upload and download, deduplicates in-flight downloads for the
// same remote path, and runs a reconciler that garbage-collects local
// cache files no longer present on the remote.
package qrfs
