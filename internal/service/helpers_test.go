package service_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}

func assertCount(t *testing.T, db *gorm.DB, model any, query string, arg any, want int64) {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where(query, arg).Count(&count).Error)
	assert.Equal(t, want, count, "%T where %s", model, query)
}
