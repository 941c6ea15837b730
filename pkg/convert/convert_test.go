// Copyright (c) 2026 Inner Garden. All rights reserved.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 5, convert.ToIntD("", 5))
	assert.Equal(t, 5, convert.ToIntD("abc", 5))
	assert.Equal(t, 12, convert.ToIntD(" 12 ", 5))
	assert.Equal(t, -3, convert.ToIntD("-3", 5))
}

func TestToBool(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "yes", "on"} {
		assert.True(t, convert.ToBool(value), value)
	}
	for _, value := range []string{"", "0", "false", "nope"} {
		assert.False(t, convert.ToBool(value), value)
	}
}
