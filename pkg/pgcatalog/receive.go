package pgcatalog

// receiveFnOID maps a pg_type.typreceive function name to its pg_proc
// OID. Bit-exact per the upstream PostgreSQL catalog; unknown names map
// to 0.
var receiveFnOID = map[string]int32{
	"array_recv":     2400,
	"boolrecv":       2436,
	"float4recv":     2424,
	"float8recv":     2426,
	"int2recv":       2404,
	"int4recv":       2406,
	"int8recv":       2408,
	"numeric_recv":   2460,
	"textrecv":       2414,
	"timestamp_recv": 2474,
	"varcharrecv":    2432,
}

// GetTypReceiveOID maps pt's receive function to its canonical pg_proc
// OID. Unknown or absent ("-") receive functions map to 0.
func GetTypReceiveOID(pt *PgType) int32 {
	return receiveFnOID[pt.TypReceive]
}

// IsBinarySupported reports whether pt supports binary wire encoding.
// Every catalog entry does.
func IsBinarySupported(pt *PgType) bool {
	return true
}
