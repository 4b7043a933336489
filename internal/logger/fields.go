package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for structured logging across the QRFS coordinator
// and PG type catalog. Use these keys consistently so log aggregation and
// querying stays uniform across packages.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// QRFS Operations
	// ========================================================================
	KeyOp         = "op"          // upload, delete, download, reconcile
	KeyRemotePath = "remote_path" // remote object key
	KeyLocalPath  = "local_path"  // local cache path
	KeyWorkerID   = "worker_id"   // worker goroutine index
	KeyQueue      = "queue"       // upload, download
	KeyQueueDepth = "queue_depth" // pending operations in a queue

	// ========================================================================
	// Size Verification
	// ========================================================================
	KeySize         = "size"          // file size in bytes
	KeyExpectedSize = "expected_size" // size expected after upload/download
	KeyActualSize   = "actual_size"   // size actually observed

	// ========================================================================
	// Reconciler
	// ========================================================================
	KeyResidueCount = "residue_count" // local files removed by a reconcile pass

	// ========================================================================
	// PG Type Catalog
	// ========================================================================
	KeyOID     = "oid"     // Postgres type OID
	KeyTypName = "typname" // Postgres type name

	// ========================================================================
	// Correlation
	// ========================================================================
	KeyCorrelationID = "correlation_id" // per-subscription ID, ties a request's log lines together
	KeyHandle        = "handle"         // hex-encoded binary identifier

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // operation duration in milliseconds
	KeyError      = "error"       // error message
	KeyErrorCode  = "error_code"  // kind-based error code
	KeyAttempt    = "attempt"     // retry attempt number
	KeyMaxRetries = "max_retries" // maximum retry attempts

	// ========================================================================
	// Storage Backend
	// ========================================================================
	KeyStoreType = "store_type" // remote store type: s3, disk, memory
	KeyBucket    = "bucket"     // cloud bucket name (S3)
	KeyKey       = "key"        // object key in cloud storage
	KeyRegion    = "region"     // cloud region
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Op returns a slog.Attr for the operation kind
func Op(op string) slog.Attr {
	return slog.String(KeyOp, op)
}

// RemotePath returns a slog.Attr for the remote object key
func RemotePath(p string) slog.Attr {
	return slog.String(KeyRemotePath, p)
}

// LocalPath returns a slog.Attr for the local cache path
func LocalPath(p string) slog.Attr {
	return slog.String(KeyLocalPath, p)
}

// WorkerID returns a slog.Attr for the worker goroutine index
func WorkerID(id int) slog.Attr {
	return slog.Int(KeyWorkerID, id)
}

// Queue returns a slog.Attr for the queue name (upload, download)
func Queue(name string) slog.Attr {
	return slog.String(KeyQueue, name)
}

// QueueDepth returns a slog.Attr for the number of pending operations
func QueueDepth(n int) slog.Attr {
	return slog.Int(KeyQueueDepth, n)
}

// Size returns a slog.Attr for file size in bytes
func Size(s uint64) slog.Attr {
	return slog.Uint64(KeySize, s)
}

// ExpectedSize returns a slog.Attr for the expected size after a transfer
func ExpectedSize(s uint64) slog.Attr {
	return slog.Uint64(KeyExpectedSize, s)
}

// ActualSize returns a slog.Attr for the observed size after a transfer
func ActualSize(s uint64) slog.Attr {
	return slog.Uint64(KeyActualSize, s)
}

// ResidueCount returns a slog.Attr for the number of local files removed
// during a reconcile pass
func ResidueCount(n int) slog.Attr {
	return slog.Int(KeyResidueCount, n)
}

// CorrelationID returns a slog.Attr tying together a subscription's log lines
func CorrelationID(id string) slog.Attr {
	return slog.String(KeyCorrelationID, id)
}

// OID returns a slog.Attr for a Postgres type OID
func OID(oid uint32) slog.Attr {
	return slog.Uint64(KeyOID, uint64(oid))
}

// TypName returns a slog.Attr for a Postgres type name
func TypName(name string) slog.Attr {
	return slog.String(KeyTypName, name)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for a kind-based error code
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}

// Attempt returns a slog.Attr for retry attempt number
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// MaxRetries returns a slog.Attr for maximum retry attempts
func MaxRetries(n int) slog.Attr {
	return slog.Int(KeyMaxRetries, n)
}

// StoreType returns a slog.Attr for the remote store type
func StoreType(t string) slog.Attr {
	return slog.String(KeyStoreType, t)
}

// Bucket returns a slog.Attr for cloud bucket name
func Bucket(name string) slog.Attr {
	return slog.String(KeyBucket, name)
}

// Key returns a slog.Attr for an object key in cloud storage
func Key(k string) slog.Attr {
	return slog.String(KeyKey, k)
}

// Region returns a slog.Attr for cloud region
func Region(r string) slog.Attr {
	return slog.String(KeyRegion, r)
}

// Handle returns a slog.Attr formatting raw bytes as hex, used for
// correlation identifiers that are not plain strings.
func Handle(h []byte) slog.Attr {
	return slog.String(KeyHandle, fmt.Sprintf("%x", h))
}
