package bd

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-inventory/pkg/types"
)

var testMap = map[string]string{
	"inventory_type": "e.inventory_type",
	"created_at":     "e.created_at",
}

func TestApplyListParams(t *testing.T) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Select("e.id").From("computer_submissions AS e")

	builder = ApplyListParams(builder, types.Filter{
		Filter:         map[string]interface{}{"inventory_type": "PC", "unknown": "x"},
		Sort:           map[string]string{"created_at": "desc", "password": "asc"},
		Limit:          10,
		Offset:         20,
		WithPagination: true,
	}, testMap)

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT e.id FROM computer_submissions AS e WHERE e.inventory_type = $1 ORDER BY e.created_at DESC LIMIT 10 OFFSET 20", query)
	assert.Equal(t, []interface{}{"PC"}, args)
}

func TestApplyFilters_CommaList(t *testing.T) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := ApplyFilters(psql.Select("1").From("t"), types.Filter{
		Filter: map[string]interface{}{"inventory_type": "PC,UPS"},
	}, testMap)

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t WHERE e.inventory_type IN ($1,$2)", query)
	assert.Equal(t, []interface{}{"PC", "UPS"}, args)
}

func TestApplySearch(t *testing.T) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := ApplySearch(psql.Select("1").From("t"), "dell", "brand", "model").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t WHERE (brand ILIKE $1 OR model ILIKE $2)", query)
	assert.Equal(t, []interface{}{"%dell%", "%dell%"}, args)

	query, _, err = ApplySearch(psql.Select("1").From("t"), "", "brand").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t", query)
}
