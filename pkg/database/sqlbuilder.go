package database

import (
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

// NewSelectBuilder returns a select builder in the SQL Server flavor.
func NewSelectBuilder() *sqlbuilder.SelectBuilder {
	return sqlbuilder.SQLServer.NewSelectBuilder()
}

// NoLock appends the read-uncommitted table hint used for all legacy reads.
func NoLock(table string) string {
	return fmt.Sprintf("%s WITH(NOLOCK)", table)
}

// Named binds value as @name. go-sqlbuilder renders a sql.NamedArg as @name
// and hands it to the driver untouched.
func Named(name string, value any) sql.NamedArg {
	return sql.Named(name, value)
}
