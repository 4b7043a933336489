package pgcatalog

var unspecified = &PgType{
	OID: 0, TypName: "unspecified", TypNamespace: 11, TypOwner: 10,
	TypLen: 1, TypByVal: true, TypType: "b", TypCategory: "B",
	TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
	TypElem: 0, TypArray: 0, TypAlign: "-", TypStorage: "-", TypBaseType: 0,
	TypReceive: "-", TypInput: "-",
}

// table holds every defined catalog entry, indexed by PgTypeId for fast
// GetByTID lookups. GetAll enumerates it in declOrder.
var table = map[PgTypeId]*PgType{
	BOOL: {
		OID: 16, TypName: "bool", TypNamespace: 11, TypOwner: 10,
		TypLen: 1, TypByVal: true, TypType: "b", TypCategory: "B",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "c", TypStorage: "p", TypBaseType: 0,
		TypReceive: "boolrecv", TypInput: "boolin",
	},
	BYTEA: {
		OID: 17, TypName: "bytea", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "U",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "bytearecv", TypInput: "byteain",
	},
	NAME: {
		OID: 19, TypName: "name", TypNamespace: 11, TypOwner: 10,
		TypLen: 64, TypByVal: false, TypType: "b", TypCategory: "S",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "raw_array_subscript_handler",
		TypElem: 0, TypArray: 0, TypAlign: "c", TypStorage: "p", TypBaseType: 0,
		TypReceive: "namerecv", TypInput: "namein",
	},
	INT8: {
		OID: 20, TypName: "int8", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "int8recv", TypInput: "int8in",
	},
	INT2: {
		OID: 21, TypName: "int2", TypNamespace: 11, TypOwner: 10,
		TypLen: 2, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "s", TypStorage: "p", TypBaseType: 0,
		TypReceive: "int2recv", TypInput: "int2in",
	},
	INT4: {
		OID: 23, TypName: "int4", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "int4recv", TypInput: "int4in",
	},
	TEXT: {
		OID: 25, TypName: "text", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "S",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "textrecv", TypInput: "textin",
	},
	OID: {
		OID: 26, TypName: "oid", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1028, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "oidrecv", TypInput: "oidin",
	},
	TID: {
		OID: 27, TypName: "tid", TypNamespace: 11, TypOwner: 10,
		TypLen: 6, TypByVal: false, TypType: "b", TypCategory: "U",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1010, TypAlign: "s", TypStorage: "p", TypBaseType: 0,
		TypReceive: "tidrecv", TypInput: "tidin",
	},
	PGCLASS: {
		OID: 83, TypName: "pg_class", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "c", TypCategory: "C",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 1259, TypSubscript: "-",
		TypElem: 0, TypArray: 273, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "record_recv", TypInput: "record_in",
	},
	FLOAT4: {
		OID: 700, TypName: "float4", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1021, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "float4recv", TypInput: "float4in",
	},
	FLOAT8: {
		OID: 701, TypName: "float8", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1022, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "float8recv", TypInput: "float8in",
	},
	MONEY: {
		OID: 790, TypName: "money", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 791, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "cash_recv", TypInput: "cash_in",
	},
	INET: {
		OID: 869, TypName: "inet", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "I",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1041, TypAlign: "i", TypStorage: "m", TypBaseType: 0,
		TypReceive: "inet_recv", TypInput: "inet_in",
	},
	ARRAYBOOL: {
		OID: 1000, TypName: "_bool", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 16, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYBYTEA: {
		OID: 1001, TypName: "_bytea", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 17, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYINT2: {
		OID: 1005, TypName: "_int2", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 21, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYINT4: {
		OID: 1007, TypName: "_int4", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 23, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYTEXT: {
		OID: 1009, TypName: "_text", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 25, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYINT8: {
		OID: 1016, TypName: "_int8", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 20, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYFLOAT4: {
		OID: 1021, TypName: "_float4", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 700, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ARRAYFLOAT8: {
		OID: 1022, TypName: "_float8", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 701, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	ACLITEM: {
		OID: 1033, TypName: "aclitem", TypNamespace: 11, TypOwner: 10,
		TypLen: 12, TypByVal: false, TypType: "b", TypCategory: "U",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1034, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "-", TypInput: "aclitemin",
	},
	ARRAYACLITEM: {
		OID: 1034, TypName: "_aclitem", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "A",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "array_subscript_handler",
		TypElem: 1033, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "array_recv", TypInput: "array_in",
	},
	BPCHAR: {
		OID: 1042, TypName: "bpchar", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "S",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1014, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "bpcharrecv", TypInput: "bpcharin",
	},
	VARCHAR: {
		OID: 1043, TypName: "varchar", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "S",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "varcharrecv", TypInput: "varcharin",
	},
	DATE: {
		OID: 1082, TypName: "date", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "b", TypCategory: "D",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "date_recv", TypInput: "date_in",
	},
	TIME: {
		OID: 1083, TypName: "time", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "D",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1183, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "time_recv", TypInput: "time_in",
	},
	TIMESTAMP: {
		OID: 1114, TypName: "timestamp", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "D",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "timestamp_recv", TypInput: "timestamp_in",
	},
	TIMESTAMPTZ: {
		OID: 1184, TypName: "timestamptz", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "D",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "timestamptz_recv", TypInput: "timestamptz_in",
	},
	INTERVAL: {
		OID: 1186, TypName: "interval", TypNamespace: 11, TypOwner: 10,
		TypLen: 16, TypByVal: false, TypType: "b", TypCategory: "T",
		TypIsPrefered: true, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1187, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "interval_recv", TypInput: "interval_in",
	},
	TIMETZ: {
		OID: 1266, TypName: "timetz", TypNamespace: 11, TypOwner: 10,
		TypLen: 12, TypByVal: false, TypType: "b", TypCategory: "D",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 1270, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "timetz_recv", TypInput: "timetz_in",
	},
	NUMERIC: {
		OID: 1700, TypName: "numeric", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "b", TypCategory: "N",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "m", TypBaseType: 0,
		TypReceive: "numeric_recv", TypInput: "numeric_in",
	},
	RECORD: {
		OID: 2249, TypName: "record", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "p", TypCategory: "P",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 2287, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "record_recv", TypInput: "record_in",
	},
	ANYARRAY: {
		OID: 2277, TypName: "anyarray", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "p", TypCategory: "P",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "anyarray_recv", TypInput: "anyarray_in",
	},
	ANYELEMENT: {
		OID: 2283, TypName: "anyelement", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "p", TypCategory: "P",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "-", TypInput: "anyelement_in",
	},
	PGLSN: {
		OID: 3220, TypName: "pg_lsn", TypNamespace: 11, TypOwner: 10,
		TypLen: 8, TypByVal: true, TypType: "b", TypCategory: "U",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 3221, TypAlign: "d", TypStorage: "p", TypBaseType: 0,
		TypReceive: "pg_lsn_recv", TypInput: "pg_lsn_in",
	},
	ANYENUM: {
		OID: 3500, TypName: "anyenum", TypNamespace: 11, TypOwner: 10,
		TypLen: 4, TypByVal: true, TypType: "p", TypCategory: "P",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "p", TypBaseType: 0,
		TypReceive: "-", TypInput: "anyenum_in",
	},
	ANYRANGE: {
		OID: 3831, TypName: "anyrange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "p", TypCategory: "P",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "-", TypInput: "anyrange_in",
	},
	INT4RANGE: {
		OID: 3904, TypName: "int4range", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	NUMRANGE: {
		OID: 3906, TypName: "numrange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	TSRANGE: {
		OID: 3908, TypName: "tsrange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	TSTZRANGE: {
		OID: 3910, TypName: "tstzrange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	DATERANGE: {
		OID: 3912, TypName: "daterange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	INT8RANGE: {
		OID: 3926, TypName: "int8range", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "range_recv", TypInput: "range_in",
	},
	INT4MULTIRANGE: {
		OID: 4451, TypName: "int4multirange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "r", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "multirange_recv", TypInput: "multirange_in",
	},
	NUMMULTIRANGE: {
		OID: 4532, TypName: "nummultirange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "m", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "multirange_recv", TypInput: "multirange_in",
	},
	TSMULTIRANGE: {
		OID: 4533, TypName: "tsmultirange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "m", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "multirange_recv", TypInput: "multirange_in",
	},
	DATEMULTIRANGE: {
		OID: 4535, TypName: "datemultirange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "m", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 0,
		TypReceive: "multirange_recv", TypInput: "multirange_in",
	},
	INT8MULTIRANGE: {
		OID: 4536, TypName: "int8multirange", TypNamespace: 11, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "m", TypCategory: "R",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "d", TypStorage: "x", TypBaseType: 0,
		TypReceive: "multirange_recv", TypInput: "multirange_in",
	},
	CHARACTERDATA: {
		OID: 13408, TypName: "character_data", TypNamespace: 13000, TypOwner: 10,
		TypLen: -1, TypByVal: false, TypType: "d", TypCategory: "S",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "i", TypStorage: "x", TypBaseType: 1043,
		TypReceive: "domain_recv", TypInput: "domain_in",
	},
	SQLIDENTIFIER: {
		OID: 13410, TypName: "sql_identifier", TypNamespace: 13000, TypOwner: 10,
		TypLen: 64, TypByVal: false, TypType: "d", TypCategory: "S",
		TypIsPrefered: false, TypIsDefined: true, TypRelID: 0, TypSubscript: "-",
		TypElem: 0, TypArray: 0, TypAlign: "c", TypStorage: "p", TypBaseType: 19,
		TypReceive: "domain_recv", TypInput: "domain_in",
	},
}

// declOrder preserves the table's declaration order for GetAll, since Go
// map iteration order is randomized.
var declOrder = []PgTypeId{
	BOOL, BYTEA, NAME, INT8, INT2, INT4, TEXT, OID, TID, PGCLASS,
	FLOAT4, FLOAT8, MONEY, INET,
	ARRAYBOOL, ARRAYBYTEA, ARRAYINT2, ARRAYINT4, ARRAYTEXT, ARRAYINT8, ARRAYFLOAT4, ARRAYFLOAT8,
	ACLITEM, ARRAYACLITEM, BPCHAR, VARCHAR, DATE, TIME, TIMESTAMP, TIMESTAMPTZ, INTERVAL, TIMETZ,
	NUMERIC, RECORD, ANYARRAY, ANYELEMENT, PGLSN, ANYENUM, ANYRANGE,
	INT4RANGE, NUMRANGE, TSRANGE, TSTZRANGE, DATERANGE, INT8RANGE,
	INT4MULTIRANGE, NUMMULTIRANGE, TSMULTIRANGE, DATEMULTIRANGE, INT8MULTIRANGE,
	CHARACTERDATA, SQLIDENTIFIER,
}

var oidIndex map[int32]PgTypeId

func init() {
	oidIndex = make(map[int32]PgTypeId, len(declOrder)+1)
	oidIndex[0] = UNSPECIFIED
	for _, id := range declOrder {
		oidIndex[int32(id)] = id
	}
}

// FromOID maps a PostgreSQL OID to its stable identifier. 0 maps to
// UNSPECIFIED; unknown OIDs report ok=false.
func FromOID(oid int32) (PgTypeId, bool) {
	id, ok := oidIndex[oid]
	return id, ok
}

// GetByTID returns the descriptor for id. id must be UNSPECIFIED or one
// of the identifiers declared in this package; any other value panics,
// since the identifier space is closed and compile-time constant.
func GetByTID(id PgTypeId) *PgType {
	if id == UNSPECIFIED {
		return unspecified
	}
	pt, ok := table[id]
	if !ok {
		panic("pgcatalog: unknown PgTypeId")
	}
	return pt
}

// GetAll returns every defined descriptor in declaration order, excluding
// UNSPECIFIED.
func GetAll() []*PgType {
	out := make([]*PgType, 0, len(declOrder))
	for _, id := range declOrder {
		out = append(out, table[id])
	}
	return out
}
