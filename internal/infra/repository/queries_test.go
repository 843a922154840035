//go:build unit

package repository_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	positionalParam = regexp.MustCompile(`\$\d+`)
	namedParam      = regexp.MustCompile(`@\w+|sqlc\.n?arg\(`)
)

// sqlc rejects a query that mixes $N with named parameters.
func TestQueries_SingleParameterStyle(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "sqlc", "queries", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		raw, err := os.ReadFile(file)
		require.NoError(t, err)

		for _, block := range strings.Split(string(raw), "-- name:")[1:] {
			name := strings.Fields(block)[0]
			t.Run(filepath.Base(file)+"/"+name, func(t *testing.T) {
				mixed := positionalParam.MatchString(block) && namedParam.MatchString(block)
				assert.False(t, mixed, "query %s mixes $N and named parameters", name)
			})
		}
	}
}
