package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsSingleton(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestDefaultTables(t *testing.T) {
	reg := Default()

	pkg, ok := reg.Package(NewKey("payments", "stripe"))
	require.True(t, ok)
	require.Equal(t, Package{Name: "stripe", Version: "^14.0.0"}, pkg)

	require.Equal(t,
		[]string{"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY"},
		reg.EnvVars(NewKey("payments", "stripe")))

	require.Equal(t,
		[]Key{NewKey("auth", "supabase")},
		reg.Dependencies(NewKey("storage", "supabase")))
}

func TestDefaultCompatEntriesCarrySolutions(t *testing.T) {
	reg := Default()
	for _, probe := range [][2]Key{
		{NewKey("auth", "supabase"), NewKey("database", "planetscale")},
		{NewKey("auth", "supabase"), NewKey("database", "neon")},
		{NewKey("storage", "supabase"), NewKey("database", "planetscale")},
	} {
		entry, ok := reg.Compatibility(probe[0], probe[1])
		require.True(t, ok, "missing entry for %v", probe)
		require.False(t, entry.Compatible)
		require.NotEmpty(t, entry.Note)
		require.NotEmpty(t, entry.Solution)
	}
}
