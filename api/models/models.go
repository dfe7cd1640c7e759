// Package models contains the API request and response types.
package models

import "time"

// User is the public user profile.
type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Token is the response of the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Meaning is one English gloss of a word.
type Meaning struct {
	ID             uint   `json:"id"`
	WordID         uint   `json:"word_id"`
	EnglishMeaning string `json:"english_meaning"`
	IsPrimary      bool   `json:"is_primary"`
}

// Word is a lexical entry with its moderation state.
type Word struct {
	ID                   uint       `json:"id"`
	GreekWord            string     `json:"greek_word"`
	GreekWordWithArticle string     `json:"greek_word_with_article"`
	WordType             string     `json:"word_type"`
	Gender               *string    `json:"gender"`
	Notes                string     `json:"notes"`
	ApprovalStatus       string     `json:"approval_status"`
	CreatedAt            *time.Time `json:"created_at"`
	CreatedBy            *uint      `json:"created_by"`
	Submitter            *User      `json:"submitter"`
	Meanings             []Meaning  `json:"meanings"`
}

// WordPage is one page of the word listing.
type WordPage struct {
	Items []Word `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}

// MeaningInput is a submitted English gloss.
type MeaningInput struct {
	EnglishMeaning string `json:"english_meaning" binding:"required"`
	IsPrimary      bool   `json:"is_primary"`
}

// WordInput is the request body for word creation and update.
type WordInput struct {
	GreekWord string         `json:"greek_word" binding:"required"`
	WordType  string         `json:"word_type" binding:"required"`
	Gender    *string        `json:"gender"`
	Notes     string         `json:"notes"`
	Meanings  []MeaningInput `json:"meanings" binding:"required"`
}

// TranslationRequest is the request body for the translation endpoints.
type TranslationRequest struct {
	Text string `json:"text"`
}

// TranslationResponse carries the translated text.
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

// DashboardStats summarizes the admin dashboard numbers.
type DashboardStats struct {
	TotalUsers    int64   `json:"total_users"`
	ActiveUsers   int64   `json:"active_users"`
	TotalContent  int64   `json:"total_content"`
	UserGrowth    float64 `json:"user_growth"`
	ContentGrowth float64 `json:"content_growth"`
}

// RecentUser is one row of the admin user dashboard.
type RecentUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Joined string `json:"joined"`
	Status string `json:"status"`
}

// RecentContent is one row of the admin content dashboard.
type RecentContent struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Created string `json:"created"`
	Status  string `json:"status"`
}
