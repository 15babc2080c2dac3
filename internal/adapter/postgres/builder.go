package postgres

import (
	"github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// positional placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
