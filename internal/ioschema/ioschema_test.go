package ioschema

import (
	"context"
	"testing"

	"github.com/oceandata/argodb/internal/iodb"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestManagerNotConnected(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	sm := NewManager(iodb.NewPgxOperator())

	assert.Error(t, sm.Create(ctx, cfg))
	assert.Error(t, sm.Migrate(ctx, cfg))
}
