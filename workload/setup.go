package workload

import (
	"fmt"
	"strings"
)

// SetupConfig controls the provisioning SQL for the benchmark database.
// Exactly one of ExtensionDir and BSONExtension must locate the BSON
// extension; both may be set, in which case the explicit extension path
// wins for the LOAD statement.
type SetupConfig struct {
	Rows          int
	ExtensionDir  string
	BSONExtension string
}

// docExpr builds the benchmark document for row index i as a SQL string
// expression. Every field is a pure function of i, so the generated
// dataset is byte-identical across runs for a fixed row count.
//
// Document shape:
//
//	{"user":{"name":"user_<i>","age":<20-59>},"country":<US|UK|FR|DE|JP>,
//	 "flag":<true|false>,"score":<i*1.5>}
const docExpr = `'{' ||
    '"user":{' ||
    '"name":"user_' || i::VARCHAR || '",' ||
    '"age":' || (20 + (i % 40))::VARCHAR ||
    '},' ||
    '"country":"' || (CASE (i % 5)
        WHEN 0 THEN 'US'
        WHEN 1 THEN 'UK'
        WHEN 2 THEN 'FR'
        WHEN 3 THEN 'DE'
        ELSE 'JP' END) || '",' ||
    '"flag":' || (CASE WHEN i % 2 = 0 THEN 'true' ELSE 'false' END) || ',' ||
    '"score":' || (i * 1.5)::VARCHAR ||
    '}'`

// SetupSQL returns the one-shot provisioning SQL: extension configuration,
// table creation, deterministic JSON data generation, and the conversion
// pass that populates the BSON table through the engine's own
// json_to_bson function. Pure string building; no side effects.
func SetupSQL(cfg SetupConfig) string {
	var b strings.Builder

	if cfg.ExtensionDir != "" {
		fmt.Fprintf(&b, "SET extension_directory='%s';\n", cfg.ExtensionDir)
	}

	if cfg.BSONExtension != "" {
		fmt.Fprintf(&b, "LOAD '%s';\n", cfg.BSONExtension)
	} else {
		b.WriteString("LOAD bson;\n")
	}

	b.WriteString("LOAD json;\n")

	b.WriteString(`
CREATE TABLE json_data (
    id INTEGER PRIMARY KEY,
    raw_json VARCHAR,
    data_json JSON
);

CREATE TABLE bson_data (
    id INTEGER PRIMARY KEY,
    data_bson BSON
);
`)

	fmt.Fprintf(&b, `
INSERT INTO json_data
SELECT
    i AS id,
    %s AS raw_json,
    (%s)::JSON AS data_json
FROM range(%d) t(i);
`, docExpr, docExpr, cfg.Rows)

	b.WriteString(`
INSERT INTO bson_data
SELECT
    id,
    json_to_bson(raw_json) AS data_bson
FROM json_data;
`)

	return b.String()
}
