package repositories

import (
	"strings"

	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// logQuery logs a query collapsed to a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// likeContains builds a LIKE pattern matching values that contain s literally.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
