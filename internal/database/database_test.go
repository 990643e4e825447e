package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolRejectsMalformedConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not-a-conn-string", 10, time.Minute, time.Hour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgParseConnString)
}
