package catalog

import "github.com/apache/arrow-go/v18/arrow"

// tpchTables lists the TPC-H tables in conversion order.
var tpchTables = []string{
	"part",
	"supplier",
	"partsupp",
	"customer",
	"orders",
	"lineitem",
	"nation",
	"region",
}

// TPCH is the TPC-H table catalog. Raw dumps are dbgen ".tbl" files,
// pipe-delimited with a trailing delimiter on every record.
type TPCH struct {
	schemas map[string]*arrow.Schema
}

// NewTPCH returns the TPC-H catalog.
func NewTPCH() *TPCH {
	return &TPCH{schemas: tpchSchemas()}
}

// Name returns "tpch".
func (b *TPCH) Name() string { return "tpch" }

// TableNames returns the TPC-H tables in conversion order.
func (b *TPCH) TableNames() []string { return tpchTables }

// TableExt returns "tbl", the dbgen output extension.
func (b *TPCH) TableExt() string { return "tbl" }

// TerminatedRecords reports true: dbgen terminates every record with '|'.
func (b *TPCH) TerminatedRecords() bool { return true }

// Schema returns the read schema for a TPC-H table.
func (b *TPCH) Schema(table string) (*arrow.Schema, error) {
	return schemaFor(b.Name(), b.schemas, table)
}

func tpchSchemas() map[string]*arrow.Schema {
	return map[string]*arrow.Schema{
		"part": schema(
			col("p_partkey", typeInt64),
			col("p_name", typeUtf8),
			col("p_mfgr", typeUtf8),
			col("p_brand", typeUtf8),
			col("p_type", typeUtf8),
			col("p_size", typeInt32),
			col("p_container", typeUtf8),
			col("p_retailprice", typeFloat),
			col("p_comment", typeUtf8),
		),
		"supplier": schema(
			col("s_suppkey", typeInt64),
			col("s_name", typeUtf8),
			col("s_address", typeUtf8),
			col("s_nationkey", typeInt64),
			col("s_phone", typeUtf8),
			col("s_acctbal", typeFloat),
			col("s_comment", typeUtf8),
		),
		"partsupp": schema(
			col("ps_partkey", typeInt64),
			col("ps_suppkey", typeInt64),
			col("ps_availqty", typeInt32),
			col("ps_supplycost", typeFloat),
			col("ps_comment", typeUtf8),
		),
		"customer": schema(
			col("c_custkey", typeInt64),
			col("c_name", typeUtf8),
			col("c_address", typeUtf8),
			col("c_nationkey", typeInt64),
			col("c_phone", typeUtf8),
			col("c_acctbal", typeFloat),
			col("c_mktsegment", typeUtf8),
			col("c_comment", typeUtf8),
		),
		"orders": schema(
			col("o_orderkey", typeInt64),
			col("o_custkey", typeInt64),
			col("o_orderstatus", typeUtf8),
			col("o_totalprice", typeFloat),
			col("o_orderdate", typeDate32),
			col("o_orderpriority", typeUtf8),
			col("o_clerk", typeUtf8),
			col("o_shippriority", typeInt32),
			col("o_comment", typeUtf8),
		),
		"lineitem": schema(
			col("l_orderkey", typeInt64),
			col("l_partkey", typeInt64),
			col("l_suppkey", typeInt64),
			col("l_linenumber", typeInt32),
			col("l_quantity", typeFloat),
			col("l_extendedprice", typeFloat),
			col("l_discount", typeFloat),
			col("l_tax", typeFloat),
			col("l_returnflag", typeUtf8),
			col("l_linestatus", typeUtf8),
			col("l_shipdate", typeDate32),
			col("l_commitdate", typeDate32),
			col("l_receiptdate", typeDate32),
			col("l_shipinstruct", typeUtf8),
			col("l_shipmode", typeUtf8),
			col("l_comment", typeUtf8),
		),
		"nation": schema(
			col("n_nationkey", typeInt64),
			col("n_name", typeUtf8),
			col("n_regionkey", typeInt64),
			col("n_comment", typeUtf8),
		),
		"region": schema(
			col("r_regionkey", typeInt64),
			col("r_name", typeUtf8),
			col("r_comment", typeUtf8),
		),
	}
}
