// Package pgwire turns pgcatalog entries into the pgproto3 wire types a
// PostgreSQL-protocol server sends back to a connected client, using the
// same jackc/pgx/v5 module the rest of this tree uses for OID lookups.
package pgwire

import (
	"github.com/jackc/pgx/v5/pgproto3"

	"github.com/marmos91/qrfs/pkg/pgcatalog"
)

// TextFormat and BinaryFormat mirror pgproto3's wire format codes, named
// here so callers don't need to remember the int16 convention.
const (
	TextFormat   int16 = 0
	BinaryFormat int16 = 1
)

// ColumnSpec names a result column and the catalog type it should be
// reported as, for FieldDescription construction.
type ColumnSpec struct {
	Name string
	Type pgcatalog.PgTypeId
}

// FieldDescription builds a pgproto3.FieldDescription for spec, selecting
// BinaryFormat when pgcatalog.IsBinarySupported reports true for the type
// and TextFormat otherwise. IsBinarySupported is true for every catalog
// entry, so the result is always BinaryFormat.
func FieldDescription(spec ColumnSpec) pgproto3.FieldDescription {
	pt := pgcatalog.GetByTID(spec.Type)

	format := TextFormat
	if pgcatalog.IsBinarySupported(pt) {
		format = BinaryFormat
	}

	return pgproto3.FieldDescription{
		Name:                 []byte(spec.Name),
		TableOID:             0,
		TableAttributeNumber: 0,
		DataTypeOID:          uint32(pt.OID),
		DataTypeSize:         pt.TypLen,
		TypeModifier:         -1,
		Format:               format,
	}
}

// RowDescription builds the pgproto3.RowDescription message describing a
// result set's columns, in column order.
func RowDescription(columns []ColumnSpec) *pgproto3.RowDescription {
	fields := make([]pgproto3.FieldDescription, len(columns))
	for i, col := range columns {
		fields[i] = FieldDescription(col)
	}
	return &pgproto3.RowDescription{Fields: fields}
}
