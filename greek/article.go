// Package greek resolves Greek grammatical articles for display.
package greek

import (
	"strings"

	"github.com/hellenika/hellenika/database"
)

// Grammatical cases covered by the article table.
const (
	CaseNominative = "nominative"
	CaseAccusative = "accusative"
)

// ArticleRule maps an article string to the grammatical attributes it marks.
type ArticleRule struct {
	Article  string
	Gender   database.Gender
	Definite bool
	Plural   bool
	Case     string
}

// articleRules is the full article table in definition order. Some article
// strings are defined more than once ("οι", "το", "τα", "μία", "ένα"); as in
// the source material, the last definition for a given article string shadows
// the earlier ones, so e.g. there is no reachable masculine plural nominative
// entry. This is deliberate, the shadowed rows are kept to document the
// ambiguity instead of resolving it.
var articleRules = []ArticleRule{
	// Definite articles, nominative.
	{"ο", database.GenderMasculine, true, false, CaseNominative},
	{"η", database.GenderFeminine, true, false, CaseNominative},
	{"το", database.GenderNeuter, true, false, CaseNominative},
	{"οι", database.GenderMasculine, true, true, CaseNominative},
	{"οι", database.GenderFeminine, true, true, CaseNominative},
	{"τα", database.GenderNeuter, true, true, CaseNominative},
	// Definite articles, accusative.
	{"τον", database.GenderMasculine, true, false, CaseAccusative},
	{"την", database.GenderFeminine, true, false, CaseAccusative},
	{"το", database.GenderNeuter, true, false, CaseAccusative},
	{"τους", database.GenderMasculine, true, true, CaseAccusative},
	{"τις", database.GenderFeminine, true, true, CaseAccusative},
	{"τα", database.GenderNeuter, true, true, CaseAccusative},
	// Indefinite articles.
	{"ένας", database.GenderMasculine, false, false, CaseNominative},
	{"μία", database.GenderFeminine, false, false, CaseNominative},
	{"ένα", database.GenderNeuter, false, false, CaseNominative},
	{"έναν", database.GenderMasculine, false, false, CaseAccusative},
	{"μία", database.GenderFeminine, false, false, CaseAccusative},
	{"ένα", database.GenderNeuter, false, false, CaseAccusative},
}

// effectiveRules holds the reachable subset of articleRules: for every article
// string only its last definition survives.
var effectiveRules = func() []ArticleRule {
	var rules []ArticleRule
	for i, r := range articleRules {
		shadowed := false
		for _, later := range articleRules[i+1:] {
			if later.Article == r.Article {
				shadowed = true
				break
			}
		}
		if !shadowed {
			rules = append(rules, r)
		}
	}
	return rules
}()

// AddArticle prefixes the word with the article matching the requested
// gender, number, case and definiteness. If no reachable rule matches, the
// word is returned unchanged.
func AddArticle(word string, gender database.Gender, plural bool, grammaticalCase string, definite bool) string {
	for _, r := range effectiveRules {
		if r.Gender == gender && r.Definite == definite && r.Plural == plural && r.Case == grammaticalCase {
			return r.Article + " " + word
		}
	}
	return word
}

// DetectArticleAndGender checks whether the phrase starts with a known
// article. If so it returns the article, its gender and the remainder of the
// phrase; otherwise the article is empty, the gender nil and the phrase is
// returned untouched.
func DetectArticleAndGender(phrase string) (string, *database.Gender, string) {
	parts := strings.Fields(strings.TrimSpace(phrase))
	if len(parts) == 0 {
		return "", nil, phrase
	}

	first := strings.ToLower(parts[0])
	for _, r := range effectiveRules {
		if r.Article == first {
			gender := r.Gender
			return first, &gender, strings.Join(parts[1:], " ")
		}
	}
	return "", nil, phrase
}
