package classifier

import (
	"strings"

	"github.com/tabletalk-ai/tabletalk/internal/store"
)

// Response is a canned reply template: free text plus an optional table.
type Response struct {
	Content string
	Table   *store.Table
}

// Classifier maps a free-text query to a response template. Implementations
// must be deterministic and side-effect free so the chat service can call
// them while holding its write lock.
type Classifier interface {
	Classify(query string) Response
}

// KeywordClassifier picks a topic by case-insensitive substring matching
// against an ordered rule list. The first rule with a matching keyword wins;
// queries matching no rule fall through to the default topic.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Rule order matters: a query like "which database language" is a database
// question, not a language question.
var rules = []struct {
	topic    string
	keywords []string
}{
	{topicDatabases, []string{"database", "sql", "mongo", "db"}},
	{topicLanguages, []string{"programming", "language", "code"}},
	{topicFrameworks, []string{"framework", "react", "vue", "angular"}},
}

func (c *KeywordClassifier) Classify(query string) Response {
	q := strings.ToLower(query)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(q, keyword) {
				return templates[rule.topic]
			}
		}
	}
	return templates[topicDefault]
}
