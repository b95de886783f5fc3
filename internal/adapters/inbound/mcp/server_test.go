package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/inbound/mcp"
)

func TestNewServer(t *testing.T) {
	s := mcp.NewServer(".")
	require.NotNil(t, s)
}
