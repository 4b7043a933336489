package pgwire

import (
	"testing"

	"github.com/marmos91/qrfs/pkg/pgcatalog"
)

func TestFieldDescription_Bool(t *testing.T) {
	fd := FieldDescription(ColumnSpec{Name: "active", Type: pgcatalog.BOOL})

	if string(fd.Name) != "active" {
		t.Errorf("Name = %q, want active", fd.Name)
	}
	if fd.DataTypeOID != 16 {
		t.Errorf("DataTypeOID = %d, want 16", fd.DataTypeOID)
	}
	if fd.TypeModifier != -1 {
		t.Errorf("TypeModifier = %d, want -1", fd.TypeModifier)
	}
}

func TestRowDescription_PreservesColumnOrder(t *testing.T) {
	rd := RowDescription([]ColumnSpec{
		{Name: "id", Type: pgcatalog.INT4},
		{Name: "name", Type: pgcatalog.TEXT},
	})

	if len(rd.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(rd.Fields))
	}
	if string(rd.Fields[0].Name) != "id" || string(rd.Fields[1].Name) != "name" {
		t.Errorf("unexpected field order: %q, %q", rd.Fields[0].Name, rd.Fields[1].Name)
	}
}
