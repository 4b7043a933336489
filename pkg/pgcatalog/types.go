// Package pgcatalog is a static registry of PostgreSQL type descriptors,
// exposed by OID and by stable identifier, for a process that answers
// PostgreSQL wire-protocol catalog lookups.
package pgcatalog

// PgTypeId is a stable identifier for a catalog entry. Its numeric value
// equals the entry's OID, matching how PostgreSQL itself names well-known
// type OIDs.
type PgTypeId int32

// UNSPECIFIED is the sentinel identifier for OID 0, always present in the
// catalog but excluded from GetAll.
const UNSPECIFIED PgTypeId = 0

// Well-known type identifiers, one per catalog entry.
const (
	BOOL           PgTypeId = 16
	BYTEA          PgTypeId = 17
	NAME           PgTypeId = 19
	INT8           PgTypeId = 20
	INT2           PgTypeId = 21
	INT4           PgTypeId = 23
	TEXT           PgTypeId = 25
	OID            PgTypeId = 26
	TID            PgTypeId = 27
	PGCLASS        PgTypeId = 83
	FLOAT4         PgTypeId = 700
	FLOAT8         PgTypeId = 701
	MONEY          PgTypeId = 790
	INET           PgTypeId = 869
	ARRAYBOOL      PgTypeId = 1000
	ARRAYBYTEA     PgTypeId = 1001
	ARRAYINT2      PgTypeId = 1005
	ARRAYINT4      PgTypeId = 1007
	ARRAYTEXT      PgTypeId = 1009
	ARRAYINT8      PgTypeId = 1016
	ARRAYFLOAT4    PgTypeId = 1021
	ARRAYFLOAT8    PgTypeId = 1022
	ACLITEM        PgTypeId = 1033
	ARRAYACLITEM   PgTypeId = 1034
	BPCHAR         PgTypeId = 1042
	VARCHAR        PgTypeId = 1043
	DATE           PgTypeId = 1082
	TIME           PgTypeId = 1083
	TIMESTAMP      PgTypeId = 1114
	TIMESTAMPTZ    PgTypeId = 1184
	INTERVAL       PgTypeId = 1186
	TIMETZ         PgTypeId = 1266
	NUMERIC        PgTypeId = 1700
	RECORD         PgTypeId = 2249
	ANYARRAY       PgTypeId = 2277
	ANYELEMENT     PgTypeId = 2283
	PGLSN          PgTypeId = 3220
	ANYENUM        PgTypeId = 3500
	ANYRANGE       PgTypeId = 3831
	INT4RANGE      PgTypeId = 3904
	NUMRANGE       PgTypeId = 3906
	TSRANGE        PgTypeId = 3908
	TSTZRANGE      PgTypeId = 3910
	DATERANGE      PgTypeId = 3912
	INT8RANGE      PgTypeId = 3926
	INT4MULTIRANGE PgTypeId = 4451
	NUMMULTIRANGE  PgTypeId = 4532
	TSMULTIRANGE   PgTypeId = 4533
	DATEMULTIRANGE PgTypeId = 4535
	INT8MULTIRANGE PgTypeId = 4536
	CHARACTERDATA  PgTypeId = 13408
	SQLIDENTIFIER  PgTypeId = 13410
)

// PgType is an immutable PostgreSQL type descriptor, field-for-field
// compatible with a pg_type catalog row.
type PgType struct {
	OID          int32
	TypName      string
	TypNamespace int32
	TypOwner     int32
	TypLen       int16
	TypByVal     bool
	TypType      string
	TypCategory  string
	TypIsPrefered bool
	TypIsDefined bool
	TypRelID     int32
	TypSubscript string
	TypElem      int32
	TypArray     int32
	TypAlign     string
	TypStorage   string
	TypBaseType  int32
	TypReceive   string
	TypInput     string
}
