package handler

import (
	"testing"

	"event_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrder(t *testing.T) {
	allowed := []string{"id", "name", "budget"}

	order, err := buildOrder(model.SortSpec{SortBy: "budget", SortOrder: "DESC"}, allowed, "id ASC")
	require.NoError(t, err)
	assert.Equal(t, "budget DESC", order)

	// direction is case-insensitive
	order, err = buildOrder(model.SortSpec{SortBy: "name", SortOrder: "asc"}, allowed, "id ASC")
	require.NoError(t, err)
	assert.Equal(t, "name ASC", order)

	// missing direction defaults to ASC
	order, err = buildOrder(model.SortSpec{SortBy: "name"}, allowed, "id ASC")
	require.NoError(t, err)
	assert.Equal(t, "name ASC", order)

	// unknown sort column falls back silently
	order, err = buildOrder(model.SortSpec{SortBy: "password", SortOrder: "ASC"}, allowed, "id ASC")
	require.NoError(t, err)
	assert.Equal(t, "id ASC", order)

	// unknown direction is an input error
	_, err = buildOrder(model.SortSpec{SortBy: "name", SortOrder: "sideways"}, allowed, "id ASC")
	assert.Error(t, err)

	// no sort at all keeps the caller's default ordering
	order, err = buildOrder(model.SortSpec{}, allowed, "start_date ASC")
	require.NoError(t, err)
	assert.Equal(t, "start_date ASC", order)
}
