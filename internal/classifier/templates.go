package classifier

import "github.com/tabletalk-ai/tabletalk/internal/store"

const (
	topicLanguages  = "languages"
	topicFrameworks = "frameworks"
	topicDatabases  = "databases"
	topicDefault    = "default"
)

// Sample response data. The tables are placeholder content standing in for a
// real model; only the topic selection above is part of the service contract.
var templates = map[string]Response{
	topicLanguages: {
		Content: "Here are the top programming languages based on popularity and usage:",
		Table: &store.Table{
			Headers: []string{"Language", "Popularity", "Use Case", "Difficulty"},
			Rows: [][]string{
				{"Python", "⭐⭐⭐⭐⭐", "Web, AI, Data Science", "Easy"},
				{"JavaScript", "⭐⭐⭐⭐⭐", "Web Development", "Medium"},
				{"Java", "⭐⭐⭐⭐", "Enterprise, Android", "Medium"},
				{"C++", "⭐⭐⭐⭐", "Systems, Gaming", "Hard"},
				{"Go", "⭐⭐⭐", "Cloud, Backend", "Medium"},
				{"TypeScript", "⭐⭐⭐⭐", "Web Development", "Medium"},
				{"Rust", "⭐⭐⭐", "Systems, Performance", "Hard"},
				{"Swift", "⭐⭐⭐", "iOS Development", "Medium"},
			},
		},
	},
	topicFrameworks: {
		Content: "Here's a comprehensive overview of modern web frameworks:",
		Table: &store.Table{
			Headers: []string{"Framework", "Type", "Learning Curve", "Performance", "Community"},
			Rows: [][]string{
				{"React", "Library", "Medium", "⭐⭐⭐⭐", "Very Large"},
				{"Vue", "Framework", "Easy", "⭐⭐⭐⭐⭐", "Large"},
				{"Angular", "Framework", "Hard", "⭐⭐⭐⭐", "Large"},
				{"Svelte", "Compiler", "Easy", "⭐⭐⭐⭐⭐", "Growing"},
				{"Next.js", "Framework", "Medium", "⭐⭐⭐⭐⭐", "Large"},
				{"Nuxt", "Framework", "Medium", "⭐⭐⭐⭐", "Medium"},
				{"Remix", "Framework", "Medium", "⭐⭐⭐⭐⭐", "Growing"},
			},
		},
	},
	topicDatabases: {
		Content: "Popular databases and their characteristics:",
		Table: &store.Table{
			Headers: []string{"Database", "Type", "Best For", "Scalability", "Ease of Use"},
			Rows: [][]string{
				{"PostgreSQL", "Relational", "Complex queries", "⭐⭐⭐⭐", "Medium"},
				{"MySQL", "Relational", "Web apps", "⭐⭐⭐⭐", "Easy"},
				{"MongoDB", "Document", "Flexible schema", "⭐⭐⭐⭐⭐", "Easy"},
				{"Redis", "Key-Value", "Caching", "⭐⭐⭐⭐⭐", "Easy"},
				{"Cassandra", "Wide-Column", "Big data", "⭐⭐⭐⭐⭐", "Hard"},
				{"DynamoDB", "Key-Value", "AWS ecosystem", "⭐⭐⭐⭐⭐", "Medium"},
			},
		},
	},
	topicDefault: {
		Content: "Here's a detailed comparison based on your query:",
		Table: &store.Table{
			Headers: []string{"Item", "Category", "Rating", "Status", "Notes"},
			Rows: [][]string{
				{"Item A", "Technology", "⭐⭐⭐⭐⭐", "Active", "Highly recommended"},
				{"Item B", "Technology", "⭐⭐⭐⭐", "Active", "Good choice"},
				{"Item C", "Technology", "⭐⭐⭐", "Growing", "Emerging option"},
				{"Item D", "Technology", "⭐⭐⭐⭐", "Stable", "Reliable"},
				{"Item E", "Technology", "⭐⭐⭐⭐⭐", "Popular", "Industry standard"},
			},
		},
	},
}
