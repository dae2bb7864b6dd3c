package fidelity

// universalRoutes exist in every generated project.
var universalRoutes = []string{
	"app/page.tsx",
	"app/layout.tsx",
	"app/globals.css",
}

// templateRoutes are the routes a template promises beyond the universal set.
var templateRoutes = map[string][]string{
	"saas": {
		"app/pricing/page.tsx",
		"app/dashboard/page.tsx",
	},
}

// authRoutes depend on the chosen provider; the path shapes differ entirely
// between providers.
var authRoutes = map[string][]string{
	"supabase": {
		"app/login/page.tsx",
		"app/auth/callback/route.ts",
	},
	"clerk": {
		"app/sign-in/[[...sign-in]]/page.tsx",
		"app/sign-up/[[...sign-up]]/page.tsx",
	},
	"auth0": {
		"app/api/auth/[auth0]/route.ts",
	},
}

func expectedRoutes(cfg Config) []string {
	routes := append([]string{}, universalRoutes...)
	routes = append(routes, templateRoutes[cfg.Template]...)
	if provider := cfg.Selection.Provider("auth"); provider != "" {
		routes = append(routes, authRoutes[provider]...)
	}
	return routes
}
