package resolver

import (
	"reflect"
	"strings"
	"testing"

	"stencil/internal/registry"
)

func TestResolveEmptySelection(t *testing.T) {
	res := Resolve(registry.Default(), registry.Selection{})
	if !res.Compatible {
		t.Fatal("empty selection must be compatible")
	}
	if len(res.Conflicts) != 0 || len(res.Warnings) != 0 || len(res.Suggestions) != 0 {
		t.Fatalf("empty selection produced findings: %+v", res)
	}
	if res.Conflicts == nil || res.Warnings == nil || res.Suggestions == nil {
		t.Fatal("result slices must be non-nil for JSON encoding")
	}
}

func TestResolveConflictEitherOrder(t *testing.T) {
	reg := registry.Default()
	forward := Resolve(reg, registry.NewSelection("auth", "supabase", "database", "planetscale"))
	reverse := Resolve(reg, registry.NewSelection("database", "planetscale", "auth", "supabase"))

	for name, res := range map[string]Result{"forward": forward, "reverse": reverse} {
		if res.Compatible {
			t.Fatalf("%s: selection should be incompatible", name)
		}
		if len(res.Conflicts) != 1 {
			t.Fatalf("%s: got %d conflicts, want 1", name, len(res.Conflicts))
		}
		c := res.Conflicts[0]
		if c.Severity != SeverityError {
			t.Fatalf("%s: severity = %q", name, c.Severity)
		}
		if c.Solution == "" {
			t.Fatalf("%s: conflict should carry a solution", name)
		}
	}
}

func TestResolveDeterministicOrdering(t *testing.T) {
	reg := registry.Default()
	sel := registry.NewSelection(
		"auth", "supabase",
		"database", "planetscale",
		"storage", "supabase",
	)
	first := Resolve(reg, sel)
	for i := 0; i < 5; i++ {
		if got := Resolve(reg, sel); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, got, first)
		}
	}
}

func TestResolveCompatibleNoteBecomesWarning(t *testing.T) {
	res := Resolve(registry.Default(), registry.NewSelection("auth", "supabase", "database", "supabase"))
	if !res.Compatible {
		t.Fatalf("selection should be compatible: %+v", res.Conflicts)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(res.Warnings))
	}
	if !strings.Contains(res.Warnings[0].Message, "single client") {
		t.Fatalf("unexpected warning: %q", res.Warnings[0].Message)
	}
}

func TestResolveDependencyGapWarns(t *testing.T) {
	res := Resolve(registry.Default(), registry.NewSelection("storage", "supabase"))
	if !res.Compatible {
		t.Fatal("missing dependency must not block the selection")
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w.Message, "works best with auth:supabase") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dependency warning, got %+v", res.Warnings)
	}
}

func TestResolveDependencySatisfied(t *testing.T) {
	res := Resolve(registry.Default(), registry.NewSelection("storage", "supabase", "auth", "supabase"))
	for _, w := range res.Warnings {
		if strings.Contains(w.Message, "works best with") {
			t.Fatalf("satisfied dependency still warned: %q", w.Message)
		}
	}
}

func TestResolveSuggestions(t *testing.T) {
	res := Resolve(registry.Default(), registry.NewSelection("payments", "stripe"))
	want := "Add an email integration to send receipts and payment-failure notices."
	if len(res.Suggestions) != 1 || res.Suggestions[0] != want {
		t.Fatalf("got %v, want [%s]", res.Suggestions, want)
	}

	res = Resolve(registry.Default(), registry.NewSelection("payments", "stripe", "email", "resend"))
	if len(res.Suggestions) != 0 {
		t.Fatalf("satisfied suggestion still reported: %v", res.Suggestions)
	}
}

func TestEnvVarsSortedAndDeduped(t *testing.T) {
	reg := registry.Default()

	got := EnvVars(reg, registry.NewSelection("payments", "stripe"))
	want := []string{"NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY", "STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// auth:supabase and database:supabase share the URL and anon key.
	got = EnvVars(reg, registry.NewSelection("auth", "supabase", "database", "supabase"))
	want = []string{"DATABASE_URL", "NEXT_PUBLIC_SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_URL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEnvVarsEmptySelection(t *testing.T) {
	got := EnvVars(registry.Default(), registry.Selection{})
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}

func TestMarkdownReport(t *testing.T) {
	reg := registry.Default()
	sel := registry.NewSelection("auth", "supabase", "database", "planetscale")
	report := MarkdownReport(Resolve(reg, sel), EnvVars(reg, sel))

	for _, want := range []string{
		"# Compatibility Report",
		"**Status:** incompatible",
		"auth:supabase",
		"DATABASE_URL=",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
