package store_test

import (
	"testing"

	"github.com/lubana/membership/internal/membership/store"
	"github.com/stretchr/testify/require"
)

func TestPageNormalize(t *testing.T) {
	require.Equal(t, store.Page{Limit: store.DefaultPageLimit}, store.Page{}.Normalize())
	require.Equal(t, store.Page{Limit: store.MaxPageLimit, Offset: 0}, store.Page{Limit: 10_000, Offset: -3}.Normalize())
	require.Equal(t, store.Page{Limit: 5, Offset: 10}, store.Page{Limit: 5, Offset: 10}.Normalize())
}
