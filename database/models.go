package database

import "time"

// Role represents a user's role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// WordType represents the grammatical category of a word.
type WordType string

const (
	WordTypeNoun        WordType = "noun"
	WordTypeVerb        WordType = "verb"
	WordTypeAdjective   WordType = "adjective"
	WordTypeAdverb      WordType = "adverb"
	WordTypePronoun     WordType = "pronoun"
	WordTypePreposition WordType = "preposition"
	WordTypeConjunction WordType = "conjunction"
	WordTypeArticle     WordType = "article"
	WordTypePrefix      WordType = "prefix"
)

// IsValid reports whether the word type is one of the known categories.
func (t WordType) IsValid() bool {
	switch t {
	case WordTypeNoun, WordTypeVerb, WordTypeAdjective, WordTypeAdverb,
		WordTypePronoun, WordTypePreposition, WordTypeConjunction,
		WordTypeArticle, WordTypePrefix:
		return true
	}
	return false
}

// Gender represents the grammatical gender of a noun.
// It is stored for other word types too but only meaningful for nouns.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

// IsValid reports whether the gender is one of the three grammatical genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// ApprovalStatus represents the moderation state of a word.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// User represents a registered user.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	Role           Role   `gorm:"not null;default:'user'"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	LastLogin      *time.Time
}

// Word represents a Greek lexical entry under moderation.
// Seed rows imported before user submissions have no submitter.
type Word struct {
	ID             uint   `gorm:"primaryKey"`
	GreekWord      string `gorm:"index;not null"`
	WordType       WordType
	Gender         *Gender
	Notes          string
	CreatedAt      time.Time
	ApprovalStatus ApprovalStatus `gorm:"index;not null;default:'pending'"`
	CreatedBy      *uint          `gorm:"index"`
	Submitter      *User          `gorm:"foreignKey:CreatedBy"`
	Meanings       []Meaning      `gorm:"constraint:OnDelete:CASCADE;"`
}

// Meaning represents one English gloss attached to a word.
type Meaning struct {
	ID             uint   `gorm:"primaryKey"`
	EnglishMeaning string `gorm:"not null"`
	IsPrimary      bool   `gorm:"not null;default:false"`
	WordID         uint   `gorm:"index;not null"`
}
