package database

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// WordFilter narrows down the word listing.
type WordFilter struct {
	// Search matches case-insensitively against the Greek spelling, the
	// notes, or any of the word's English meanings.
	Search string
	// WordType restricts results to a single word type.
	WordType WordType
	// Gender restricts results to a single gender.
	Gender Gender
	// ApprovedOnly hides all non-approved words.
	ApprovedOnly bool
	// Offset and Limit apply after filtering and ordering.
	Offset int
	Limit  int
}

func (c *Client) CreateWord(ctx context.Context, word *Word) error {
	// gorm inserts the word and its meanings in a single transaction.
	if err := c.db.WithContext(ctx).Create(word).Error; err != nil {
		log.Error("failed to create word", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetWordByID(ctx context.Context, id uint) (*Word, error) {
	var word Word
	err := c.db.WithContext(ctx).
		Preload("Meanings").
		Preload("Submitter").
		First(&word, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get word by id", "error", err)
		}
		return nil, err
	}
	return &word, nil
}

// ListWords returns one page of words matching the filter, ordered by Greek
// spelling, together with the total match count before pagination.
func (c *Client) ListWords(ctx context.Context, filter WordFilter) ([]Word, int64, error) {
	tx := c.db.WithContext(ctx).Model(&Word{})

	if filter.Search != "" {
		// sqlite's LOWER only folds ASCII, so on the sqlite driver a search
		// in the wrong letter case matches Greek text only when the stored
		// spelling already is lower case. postgres folds the full alphabet.
		term := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where(
			"LOWER(greek_word) LIKE ? OR LOWER(notes) LIKE ? OR id IN (?)",
			term, term,
			c.db.Model(&Meaning{}).Select("word_id").Where("LOWER(english_meaning) LIKE ?", term),
		)
	}
	if filter.WordType != "" {
		tx = tx.Where("word_type = ?", filter.WordType)
	}
	if filter.Gender != "" {
		tx = tx.Where("gender = ?", filter.Gender)
	}
	if filter.ApprovedOnly {
		tx = tx.Where("approval_status = ?", ApprovalStatusApproved)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Error("failed to count words", "error", err)
		return nil, 0, err
	}

	var words []Word
	err := tx.
		Preload("Meanings").
		Preload("Submitter").
		Order("greek_word ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&words).Error
	if err != nil {
		log.Error("failed to list words", "error", err)
		return nil, 0, err
	}
	return words, total, nil
}

// ListPendingWords returns all words awaiting moderation.
func (c *Client) ListPendingWords(ctx context.Context) ([]Word, error) {
	var words []Word
	err := c.db.WithContext(ctx).
		Preload("Meanings").
		Preload("Submitter").
		Where("approval_status = ?", ApprovalStatusPending).
		Find(&words).Error
	if err != nil {
		log.Error("failed to list pending words", "error", err)
		return nil, err
	}
	return words, nil
}

// UpdateWord replaces the word's scalar fields and its whole meanings
// collection in one transaction. Meanings are not merged: the previous set
// is deleted and the new one inserted.
func (c *Client) UpdateWord(ctx context.Context, word *Word, meanings []Meaning) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(word).Select("GreekWord", "WordType", "Gender", "Notes", "ApprovalStatus").
			Updates(word).Error; err != nil {
			return err
		}
		if err := tx.Where("word_id = ?", word.ID).Delete(&Meaning{}).Error; err != nil {
			return err
		}
		for i := range meanings {
			meanings[i].ID = 0
			meanings[i].WordID = word.ID
		}
		if len(meanings) > 0 {
			if err := tx.Create(&meanings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to update word", "error", err)
		return err
	}
	word.Meanings = meanings
	return nil
}

// SetApprovalStatus sets the moderation status of a word unconditionally.
func (c *Client) SetApprovalStatus(ctx context.Context, id uint, status ApprovalStatus) error {
	if err := c.db.WithContext(ctx).Model(&Word{}).Where("id = ?", id).
		Update("approval_status", status).Error; err != nil {
		log.Error("failed to set approval status", "error", err)
		return err
	}
	return nil
}

// DeleteWord deletes a word together with all of its meanings.
func (c *Client) DeleteWord(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("word_id = ?", id).Delete(&Meaning{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Word{}, id).Error
	})
	if err != nil {
		log.Error("failed to delete word", "error", err)
	}
	return err
}

func (c *Client) CountWords(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Word{}).Count(&count).Error
	return count, err
}

func (c *Client) CountMeaningsForWord(ctx context.Context, wordID uint) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Meaning{}).Where("word_id = ?", wordID).Count(&count).Error
	return count, err
}

// GetRecentWords returns the most recently created words.
func (c *Client) GetRecentWords(ctx context.Context, limit int) ([]Word, error) {
	var words []Word
	if err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&words).Error; err != nil {
		log.Error("failed to get recent words", "error", err)
		return nil, err
	}
	return words, nil
}
