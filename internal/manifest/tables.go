package manifest

import "stencil/internal/registry"

// templateFiles lists the static scaffold per template identifier.
var templateFiles = map[string][]string{
	"saas": {
		"app/layout.tsx",
		"app/page.tsx",
		"app/globals.css",
		"app/pricing/page.tsx",
		"app/dashboard/page.tsx",
		"components/ui/button.tsx",
		"components/ui/card.tsx",
		"components/ui/input.tsx",
		"components/ui/badge.tsx",
		"lib/utils.ts",
	},
	"landing": {
		"app/layout.tsx",
		"app/page.tsx",
		"app/globals.css",
		"components/ui/button.tsx",
		"components/ui/card.tsx",
		"lib/utils.ts",
	},
}

// sharedIntegrationFiles holds the per-key file lists; both shipped templates
// currently reference the same sets.
var sharedIntegrationFiles = map[registry.Key][]string{
	{Category: "auth", Provider: "supabase"}: {
		"lib/supabase/client.ts",
		"lib/supabase/server.ts",
		"middleware.ts",
		"app/login/page.tsx",
		"app/auth/callback/route.ts",
		"components/LoginForm.tsx",
		"components/SignupForm.tsx",
		"components/UserMenu.tsx",
	},
	{Category: "auth", Provider: "clerk"}: {
		"middleware.ts",
		"app/sign-in/[[...sign-in]]/page.tsx",
		"app/sign-up/[[...sign-up]]/page.tsx",
		"components/LoginForm.tsx",
		"components/SignupForm.tsx",
		"components/UserMenu.tsx",
	},
	{Category: "payments", Provider: "stripe"}: {
		"lib/stripe.ts",
		"app/api/webhooks/stripe/route.ts",
		"components/PricingCard.tsx",
		"components/CheckoutButton.tsx",
	},
	{Category: "email", Provider: "resend"}: {
		"lib/email.ts",
		"components/ContactForm.tsx",
	},
	{Category: "analytics", Provider: "posthog"}: {
		"lib/analytics.ts",
		"components/AnalyticsProvider.tsx",
	},
	{Category: "storage", Provider: "supabase"}: {
		"lib/storage.ts",
		"components/FileUpload.tsx",
	},
	{Category: "storage", Provider: "s3"}: {
		"lib/storage.ts",
		"components/FileUpload.tsx",
	},
	{Category: "database", Provider: "supabase"}: {
		"lib/db.ts",
	},
	{Category: "ai", Provider: "openai"}: {
		"lib/ai.ts",
		"components/ChatBox.tsx",
	},
	{Category: "ai", Provider: "anthropic"}: {
		"lib/ai.ts",
		"components/ChatBox.tsx",
	},
}

// templateIntegrationFiles indexes integration file lists by template first,
// then by key, so a template can diverge from the shared sets without the
// lookup path changing.
var templateIntegrationFiles = map[string]map[registry.Key][]string{
	"saas":    sharedIntegrationFiles,
	"landing": sharedIntegrationFiles,
}

// TemplateFiles returns a copy of the base file list for template. Unknown
// templates return nil.
func TemplateFiles(template string) []string {
	files := templateFiles[template]
	if len(files) == 0 {
		return nil
	}
	out := make([]string, len(files))
	copy(out, files)
	return out
}

// IntegrationFiles returns a copy of the file list for key under template.
// Misses (unknown template or unregistered key) return nil.
func IntegrationFiles(template string, k registry.Key) []string {
	files := templateIntegrationFiles[template][k]
	if len(files) == 0 {
		return nil
	}
	out := make([]string, len(files))
	copy(out, files)
	return out
}
