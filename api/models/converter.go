package models

import (
	"github.com/samber/lo"

	"github.com/hellenika/hellenika/database"
	"github.com/hellenika/hellenika/greek"
)

// ToUser converts a database user to its API representation.
func ToUser(user *database.User) User {
	return User{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	}
}

// ToMeaning converts a database meaning to its API representation.
func ToMeaning(m database.Meaning) Meaning {
	return Meaning{
		ID:             m.ID,
		WordID:         m.WordID,
		EnglishMeaning: m.EnglishMeaning,
		IsPrimary:      m.IsPrimary,
	}
}

// ToWord converts a database word to its API representation. For nouns with a
// known gender the display form carries the definite article.
func ToWord(word *database.Word) Word {
	withArticle := word.GreekWord
	if word.WordType == database.WordTypeNoun && word.Gender != nil {
		withArticle = greek.AddArticle(word.GreekWord, *word.Gender, false, greek.CaseNominative, true)
	}

	var gender *string
	if word.Gender != nil {
		gender = lo.ToPtr(string(*word.Gender))
	}
	var submitter *User
	if word.Submitter != nil {
		submitter = lo.ToPtr(ToUser(word.Submitter))
	}

	createdAt := word.CreatedAt
	return Word{
		ID:                   word.ID,
		GreekWord:            word.GreekWord,
		GreekWordWithArticle: withArticle,
		WordType:             string(word.WordType),
		Gender:               gender,
		Notes:                word.Notes,
		ApprovalStatus:       string(word.ApprovalStatus),
		CreatedAt:            &createdAt,
		CreatedBy:            word.CreatedBy,
		Submitter:            submitter,
		Meanings:             lo.Map(word.Meanings, func(m database.Meaning, _ int) Meaning { return ToMeaning(m) }),
	}
}

// ToWords converts a slice of database words.
func ToWords(words []database.Word) []Word {
	return lo.Map(words, func(w database.Word, _ int) Word { return ToWord(&w) })
}
