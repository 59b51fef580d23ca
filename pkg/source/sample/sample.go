// Package sample ships the built-in demonstration dataset: forty items
// spread uniformly across the default four sections and four rings.
// It is used by `techradar render --sample`, by `techradar browse`
// when no file is given, and as the reference dataset in layout tests.
package sample

import "github.com/radarhq/techradar/pkg/radar"

func score(v float64) *float64 { return &v }

// Items returns a fresh copy of the sample dataset. Callers may mutate
// the returned slice freely.
func Items() []radar.Item {
	items := []radar.Item{
		// Techniques
		{ID: 1, Name: "Infrastructure as Code", Section: "Techniques", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.92)},
		{ID: 2, Name: "Continuous Delivery", Section: "Techniques", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.85)},
		{ID: 3, Name: "Trunk-Based Development", Section: "Techniques", Ring: "Adopt", Movement: radar.MovementMoved},
		{ID: 4, Name: "Contract Testing", Section: "Techniques", Ring: "Trial", Movement: radar.MovementNone, Score: score(0.64)},
		{ID: 5, Name: "Chaos Engineering", Section: "Techniques", Ring: "Trial", Movement: radar.MovementNew},
		{ID: 6, Name: "Micro Frontends", Section: "Techniques", Ring: "Assess", Movement: radar.MovementNone},
		{ID: 7, Name: "Design Tokens", Section: "Techniques", Ring: "Assess", Movement: radar.MovementNew, Score: score(0.41)},
		{ID: 8, Name: "GitOps", Section: "Techniques", Ring: "Assess", Movement: radar.MovementMoved},
		{ID: 9, Name: "Long-Lived Branches", Section: "Techniques", Ring: "Hold", Movement: radar.MovementNone},
		{ID: 10, Name: "Manual Release Sign-Off", Section: "Techniques", Ring: "Hold", Movement: radar.MovementNone, Score: score(0.12)},

		// Tools
		{ID: 11, Name: "Terraform", Section: "Tools", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.95)},
		{ID: 12, Name: "Prometheus", Section: "Tools", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.88)},
		{ID: 13, Name: "Grafana", Section: "Tools", Ring: "Adopt", Movement: radar.MovementMoved},
		{ID: 14, Name: "k6", Section: "Tools", Ring: "Trial", Movement: radar.MovementNew},
		{ID: 15, Name: "Renovate", Section: "Tools", Ring: "Trial", Movement: radar.MovementNone, Score: score(0.58)},
		{ID: 16, Name: "OpenTofu", Section: "Tools", Ring: "Assess", Movement: radar.MovementNew},
		{ID: 17, Name: "Dagger", Section: "Tools", Ring: "Assess", Movement: radar.MovementNone, Score: score(0.37)},
		{ID: 18, Name: "Earthly", Section: "Tools", Ring: "Assess", Movement: radar.MovementNone},
		{ID: 19, Name: "Jenkins Freestyle Jobs", Section: "Tools", Ring: "Hold", Movement: radar.MovementNone},
		{ID: 20, Name: "Hand-Rolled Secrets Files", Section: "Tools", Ring: "Hold", Movement: radar.MovementMoved, Score: score(0.08)},

		// Platforms
		{ID: 21, Name: "Kubernetes", Section: "Platforms", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.9)},
		{ID: 22, Name: "PostgreSQL", Section: "Platforms", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.97)},
		{ID: 23, Name: "NATS", Section: "Platforms", Ring: "Trial", Movement: radar.MovementNew},
		{ID: 24, Name: "ClickHouse", Section: "Platforms", Ring: "Trial", Movement: radar.MovementNone, Score: score(0.61)},
		{ID: 25, Name: "Fly.io", Section: "Platforms", Ring: "Trial", Movement: radar.MovementMoved},
		{ID: 26, Name: "WebAssembly on the Server", Section: "Platforms", Ring: "Assess", Movement: radar.MovementNew},
		{ID: 27, Name: "DuckDB", Section: "Platforms", Ring: "Assess", Movement: radar.MovementNone, Score: score(0.44)},
		{ID: 28, Name: "Edge Functions", Section: "Platforms", Ring: "Assess", Movement: radar.MovementNone},
		{ID: 29, Name: "Self-Managed Hadoop", Section: "Platforms", Ring: "Hold", Movement: radar.MovementNone},
		{ID: 30, Name: "Shared Mutable Database", Section: "Platforms", Ring: "Hold", Movement: radar.MovementNone, Score: score(0.05)},

		// Languages & Frameworks
		{ID: 31, Name: "Go", Section: "Languages & Frameworks", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.93)},
		{ID: 32, Name: "TypeScript", Section: "Languages & Frameworks", Ring: "Adopt", Movement: radar.MovementNone, Score: score(0.89)},
		{ID: 33, Name: "Rust", Section: "Languages & Frameworks", Ring: "Trial", Movement: radar.MovementMoved},
		{ID: 34, Name: "HTMX", Section: "Languages & Frameworks", Ring: "Trial", Movement: radar.MovementNew, Score: score(0.55)},
		{ID: 35, Name: "Svelte", Section: "Languages & Frameworks", Ring: "Trial", Movement: radar.MovementNone},
		{ID: 36, Name: "Gleam", Section: "Languages & Frameworks", Ring: "Assess", Movement: radar.MovementNew},
		{ID: 37, Name: "Zig", Section: "Languages & Frameworks", Ring: "Assess", Movement: radar.MovementNone, Score: score(0.33)},
		{ID: 38, Name: "Mojo", Section: "Languages & Frameworks", Ring: "Assess", Movement: radar.MovementNew},
		{ID: 39, Name: "AngularJS", Section: "Languages & Frameworks", Ring: "Hold", Movement: radar.MovementNone},
		{ID: 40, Name: "Untyped Config Languages", Section: "Languages & Frameworks", Ring: "Hold", Movement: radar.MovementNone, Score: score(0.1)},
	}
	return items
}

// Taxonomy returns the taxonomy matching the sample dataset.
func Taxonomy() radar.Taxonomy {
	return radar.DefaultTaxonomy()
}
