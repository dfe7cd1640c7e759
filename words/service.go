// Package words implements the word submission and moderation workflow.
//
// A submitted word starts out pending and becomes approved or rejected by an
// admin decision. Neither state is terminal: an edit by a non-admin puts the
// word back into pending, while an admin edit leaves the status untouched.
// Concurrent writes against the same word are not serialized, the last commit
// wins.
package words

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hellenika/hellenika/database"
)

var (
	// ErrNotFound is returned when the referenced word does not exist.
	ErrNotFound = errors.New("word not found")
	// ErrForbidden is returned when the caller lacks the rights for an operation.
	ErrForbidden = errors.New("forbidden")
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Caller identifies the authenticated user an operation runs on behalf of.
type Caller struct {
	ID   uint
	Role database.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == database.RoleAdmin
}

// Service owns the word lifecycle from submission to moderation decision.
type Service struct {
	db *database.Client
}

// NewService creates a new moderation workflow service.
func NewService(db *database.Client) *Service {
	return &Service{db: db}
}

// MeaningInput is one English gloss of a submitted word.
type MeaningInput struct {
	EnglishMeaning string
	IsPrimary      bool
}

// SubmitRequest carries the fields of a word submission or update.
type SubmitRequest struct {
	GreekWord string
	WordType  database.WordType
	Gender    *database.Gender
	Notes     string
	Meanings  []MeaningInput
}

// Submit creates a new word owned by the caller. The word always starts out
// pending, regardless of the caller's role.
func (s *Service) Submit(ctx context.Context, caller Caller, req SubmitRequest) (*database.Word, error) {
	createdBy := caller.ID
	word := database.Word{
		GreekWord:      req.GreekWord,
		WordType:       req.WordType,
		Gender:         req.Gender,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
		ApprovalStatus: database.ApprovalStatusPending,
		CreatedBy:      &createdBy,
		Meanings:       toMeanings(req.Meanings),
	}
	if err := s.db.CreateWord(ctx, &word); err != nil {
		return nil, fmt.Errorf("submit word: %w", err)
	}
	return s.db.GetWordByID(ctx, word.ID)
}

// ListRequest carries the listing filters and pagination.
type ListRequest struct {
	Search         string
	WordType       database.WordType
	Gender         database.Gender
	IncludePending bool
	Page           int
	Size           int
}

// Page is one page of the word listing.
type Page struct {
	Items []database.Word
	Total int64
	Page  int
	Size  int
	Pages int
}

// List returns one page of words ordered by Greek spelling. Non-approved
// words are only visible to an admin who explicitly asks for them.
func (s *Service) List(ctx context.Context, caller Caller, req ListRequest) (*Page, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.Size
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := database.WordFilter{
		Search:       req.Search,
		WordType:     req.WordType,
		Gender:       req.Gender,
		ApprovedOnly: !req.IncludePending || !caller.IsAdmin(),
		Offset:       (page - 1) * size,
		Limit:        size,
	}
	items, total, err := s.db.ListWords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	pages := int((total + int64(size) - 1) / int64(size))
	return &Page{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}

// ListPending returns all words awaiting moderation. Admin only.
func (s *Service) ListPending(ctx context.Context, caller Caller) ([]database.Word, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.db.ListPendingWords(ctx)
}

// Get returns the word with the given ID. Pending words are only visible to
// admins.
func (s *Service) Get(ctx context.Context, caller Caller, id uint) (*database.Word, error) {
	word, err := s.db.GetWordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}
	if word.ApprovalStatus == database.ApprovalStatusPending && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return word, nil
}

// Update replaces the word's fields and its whole meanings collection. A
// non-admin may only edit a still-pending word they submitted themselves, and
// the edit keeps it pending. An admin may edit any word without changing its
// status, so approved content can be fixed up silently.
func (s *Service) Update(ctx context.Context, caller Caller, id uint, req SubmitRequest) (*database.Word, error) {
	word, err := s.db.GetWordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	if !caller.IsAdmin() {
		if word.ApprovalStatus != database.ApprovalStatusPending {
			return nil, ErrForbidden
		}
		if word.CreatedBy == nil || *word.CreatedBy != caller.ID {
			return nil, ErrForbidden
		}
	}

	word.GreekWord = req.GreekWord
	word.WordType = req.WordType
	word.Gender = req.Gender
	word.Notes = req.Notes
	if !caller.IsAdmin() {
		// Edits by regular users go back through review.
		word.ApprovalStatus = database.ApprovalStatusPending
	}

	if err := s.db.UpdateWord(ctx, word, toMeanings(req.Meanings)); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	return s.db.GetWordByID(ctx, word.ID)
}

// Approve marks a word as approved, regardless of its current status. Admin only.
func (s *Service) Approve(ctx context.Context, caller Caller, id uint) (*database.Word, error) {
	return s.moderate(ctx, caller, id, database.ApprovalStatusApproved)
}

// Reject marks a word as rejected, regardless of its current status. Admin only.
func (s *Service) Reject(ctx context.Context, caller Caller, id uint) (*database.Word, error) {
	return s.moderate(ctx, caller, id, database.ApprovalStatusRejected)
}

func (s *Service) moderate(ctx context.Context, caller Caller, id uint, status database.ApprovalStatus) (*database.Word, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if _, err := s.db.GetWordByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}
	if err := s.db.SetApprovalStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set approval status: %w", err)
	}
	return s.db.GetWordByID(ctx, id)
}

// Delete removes a word and all of its meanings. Admin only.
func (s *Service) Delete(ctx context.Context, caller Caller, id uint) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.db.GetWordByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get word: %w", err)
	}
	if err := s.db.DeleteWord(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return nil
}

func toMeanings(inputs []MeaningInput) []database.Meaning {
	meanings := make([]database.Meaning, 0, len(inputs))
	for _, m := range inputs {
		meanings = append(meanings, database.Meaning{
			EnglishMeaning: m.EnglishMeaning,
			IsPrimary:      m.IsPrimary,
		})
	}
	return meanings
}
