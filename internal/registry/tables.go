package registry

import "sync"

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in registry, constructed once per process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = &Registry{
			compat:   compatTable(),
			deps:     dependencyTable(),
			envVars:  envVarTable(),
			packages: packageTable(),
		}
	})
	return defaultReg
}

func key(category, provider string) Key {
	return Key{Category: category, Provider: provider}
}

// compatTable is intentionally sparse: absence means "no constraint". Entries
// are stored in one direction only; resolvers probe both.
func compatTable() map[pair]CompatEntry {
	return map[pair]CompatEntry{
		{key("auth", "supabase"), key("database", "supabase")}: {
			Compatible: true,
			Note:       "Supabase auth and database share one project; use a single client for both.",
		},
		{key("auth", "supabase"), key("database", "planetscale")}: {
			Compatible: false,
			Note:       "Supabase auth stores its schema in the Supabase Postgres instance; PlanetScale cannot host it.",
			Solution:   "Choose database:supabase, or switch auth to clerk.",
		},
		{key("auth", "supabase"), key("database", "neon")}: {
			Compatible: false,
			Note:       "Supabase auth cannot run against an external Neon database.",
			Solution:   "Choose database:supabase, or switch auth to clerk.",
		},
		{key("storage", "supabase"), key("database", "planetscale")}: {
			Compatible: false,
			Note:       "Supabase storage metadata lives in the Supabase database, which PlanetScale replaces.",
			Solution:   "Use storage:s3 with PlanetScale, or move the database to supabase.",
		},
		{key("auth", "clerk"), key("database", "supabase")}: {
			Compatible: true,
			Note:       "Enable the Clerk JWT template for Supabase so row-level security sees Clerk sessions.",
		},
		{key("auth", "supabase"), key("storage", "s3")}: {
			Compatible: true,
			Note:       "Supabase already bundles storage; S3 adds a second storage system to operate.",
		},
	}
}

func dependencyTable() map[Key][]Key {
	return map[Key][]Key{
		key("storage", "supabase"): {key("auth", "supabase")},
	}
}

func envVarTable() map[Key][]string {
	return map[Key][]string{
		key("auth", "supabase"):         {"NEXT_PUBLIC_SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_ANON_KEY"},
		key("auth", "clerk"):            {"NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY", "CLERK_SECRET_KEY"},
		key("auth", "auth0"):            {"AUTH0_SECRET", "AUTH0_BASE_URL", "AUTH0_ISSUER_BASE_URL", "AUTH0_CLIENT_ID", "AUTH0_CLIENT_SECRET"},
		key("payments", "stripe"):       {"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY"},
		key("payments", "paddle"):       {"PADDLE_API_KEY", "NEXT_PUBLIC_PADDLE_CLIENT_TOKEN"},
		key("payments", "lemonsqueezy"): {"LEMONSQUEEZY_API_KEY", "LEMONSQUEEZY_WEBHOOK_SECRET"},
		key("email", "resend"):          {"RESEND_API_KEY"},
		key("email", "sendgrid"):        {"SENDGRID_API_KEY"},
		key("email", "postmark"):        {"POSTMARK_SERVER_TOKEN"},
		key("analytics", "posthog"):     {"NEXT_PUBLIC_POSTHOG_KEY", "NEXT_PUBLIC_POSTHOG_HOST"},
		key("analytics", "plausible"):   {"NEXT_PUBLIC_PLAUSIBLE_DOMAIN"},
		key("storage", "supabase"):      {"SUPABASE_SERVICE_ROLE_KEY"},
		key("storage", "s3"):            {"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", "S3_BUCKET_NAME"},
		key("storage", "uploadthing"):   {"UPLOADTHING_SECRET", "UPLOADTHING_APP_ID"},
		key("database", "supabase"):     {"NEXT_PUBLIC_SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_ANON_KEY", "DATABASE_URL"},
		key("database", "planetscale"):  {"DATABASE_URL"},
		key("database", "neon"):         {"DATABASE_URL"},
		key("ai", "openai"):             {"OPENAI_API_KEY"},
		key("ai", "anthropic"):          {"ANTHROPIC_API_KEY"},
	}
}

func packageTable() map[Key]Package {
	return map[Key]Package{
		key("auth", "supabase"):         {Name: "@supabase/ssr", Version: "^0.5.0"},
		key("auth", "clerk"):            {Name: "@clerk/nextjs", Version: "^5.0.0"},
		key("auth", "auth0"):            {Name: "@auth0/nextjs-auth0", Version: "^3.5.0"},
		key("payments", "stripe"):       {Name: "stripe", Version: "^14.0.0"},
		key("payments", "paddle"):       {Name: "@paddle/paddle-node-sdk", Version: "^1.0.0"},
		key("payments", "lemonsqueezy"): {Name: "@lemonsqueezy/lemonsqueezy.js", Version: "^2.0.0"},
		key("email", "resend"):          {Name: "resend", Version: "^3.0.0"},
		key("email", "sendgrid"):        {Name: "@sendgrid/mail", Version: "^8.0.0"},
		key("email", "postmark"):        {Name: "postmark", Version: "^4.0.0"},
		key("analytics", "posthog"):     {Name: "posthog-js", Version: "^1.100.0"},
		key("analytics", "plausible"):   {Name: "next-plausible", Version: "^3.11.0"},
		key("analytics", "vercel"):      {Name: "@vercel/analytics", Version: "^1.1.0"},
		key("storage", "supabase"):      {Name: "@supabase/supabase-js", Version: "^2.39.0"},
		key("storage", "s3"):            {Name: "@aws-sdk/client-s3", Version: "^3.500.0"},
		key("storage", "uploadthing"):   {Name: "uploadthing", Version: "^6.0.0"},
		key("database", "supabase"):     {Name: "@supabase/supabase-js", Version: "^2.39.0"},
		key("database", "planetscale"):  {Name: "@planetscale/database", Version: "^1.14.0"},
		key("database", "neon"):         {Name: "@neondatabase/serverless", Version: "^0.7.0"},
		key("ai", "openai"):             {Name: "openai", Version: "^4.26.0"},
		key("ai", "anthropic"):          {Name: "@anthropic-ai/sdk", Version: "^0.27.0"},
	}
}
