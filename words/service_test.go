package words

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenika/hellenika/config"
	"github.com/hellenika/hellenika/database"
)

func newTestService(t *testing.T) (*Service, *database.Client) {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db), db
}

func createTestUser(t *testing.T, db *database.Client, email string, role database.Role) Caller {
	t.Helper()
	user := database.User{
		Email:          email,
		HashedPassword: "not-a-real-hash",
		Role:           role,
		IsActive:       true,
	}
	require.NoError(t, db.CreateUser(context.Background(), &user))
	return Caller{ID: user.ID, Role: user.Role}
}

func submitTestWord(t *testing.T, svc *Service, caller Caller, greekWord string) *database.Word {
	t.Helper()
	gender := database.GenderNeuter
	word, err := svc.Submit(context.Background(), caller, SubmitRequest{
		GreekWord: greekWord,
		WordType:  database.WordTypeNoun,
		Gender:    &gender,
		Notes:     "a test word",
		Meanings: []MeaningInput{
			{EnglishMeaning: "hello", IsPrimary: true},
		},
	})
	require.NoError(t, err)
	return word
}

func TestSubmitStartsPending(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, user, "γεια")
	assert.Equal(t, database.ApprovalStatusPending, word.ApprovalStatus)
	require.NotNil(t, word.CreatedBy)
	assert.Equal(t, user.ID, *word.CreatedBy)
	require.Len(t, word.Meanings, 1)
	assert.Equal(t, "hello", word.Meanings[0].EnglishMeaning)

	// Admin submissions go through review too.
	adminWord := submitTestWord(t, svc, admin, "καρδιά")
	assert.Equal(t, database.ApprovalStatusPending, adminWord.ApprovalStatus)
}

func TestGetPendingVisibility(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, user, "γεια")

	_, err := svc.Get(context.Background(), user, word.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(context.Background(), admin, word.ID)
	require.NoError(t, err)
	assert.Equal(t, word.ID, got.ID)

	_, err = svc.Get(context.Background(), user, word.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)

	// Once approved, the word is visible to everyone.
	_, err = svc.Approve(context.Background(), admin, word.ID)
	require.NoError(t, err)
	got, err = svc.Get(context.Background(), user, word.ID)
	require.NoError(t, err)
	assert.Equal(t, database.ApprovalStatusApproved, got.ApprovalStatus)
}

func TestUpdateByOwnerKeepsPending(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)

	word := submitTestWord(t, svc, user, "γεια")

	updated, err := svc.Update(context.Background(), user, word.ID, SubmitRequest{
		GreekWord: "γεια σου",
		WordType:  database.WordTypeNoun,
		Notes:     "updated",
		Meanings: []MeaningInput{
			{EnglishMeaning: "hello there", IsPrimary: true},
			{EnglishMeaning: "hi", IsPrimary: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, database.ApprovalStatusPending, updated.ApprovalStatus)
	assert.Equal(t, "γεια σου", updated.GreekWord)
	assert.Len(t, updated.Meanings, 2)
}

func TestUpdateByNonOwnerForbidden(t *testing.T) {
	svc, _ := newTestService(t)
	owner := createTestUser(t, svc.db, "owner@example.com", database.RoleUser)
	other := createTestUser(t, svc.db, "other@example.com", database.RoleUser)

	word := submitTestWord(t, svc, owner, "γεια")

	_, err := svc.Update(context.Background(), other, word.ID, SubmitRequest{
		GreekWord: "γεια",
		WordType:  database.WordTypeNoun,
		Meanings:  []MeaningInput{{EnglishMeaning: "hello"}},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateApprovedWordByOwnerForbidden(t *testing.T) {
	svc, _ := newTestService(t)
	owner := createTestUser(t, svc.db, "owner@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, owner, "γεια")
	_, err := svc.Approve(context.Background(), admin, word.ID)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), owner, word.ID, SubmitRequest{
		GreekWord: "γεια",
		WordType:  database.WordTypeNoun,
		Meanings:  []MeaningInput{{EnglishMeaning: "hello"}},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateByAdminKeepsStatus(t *testing.T) {
	svc, _ := newTestService(t)
	owner := createTestUser(t, svc.db, "owner@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, owner, "γεια")
	_, err := svc.Approve(context.Background(), admin, word.ID)
	require.NoError(t, err)

	// Admins can fix up approved content without triggering re-review.
	updated, err := svc.Update(context.Background(), admin, word.ID, SubmitRequest{
		GreekWord: "γειά",
		WordType:  database.WordTypeNoun,
		Notes:     "fixed accent",
		Meanings:  []MeaningInput{{EnglishMeaning: "hello", IsPrimary: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, database.ApprovalStatusApproved, updated.ApprovalStatus)
	assert.Equal(t, "γειά", updated.GreekWord)
}

func TestUpdateReplacesMeanings(t *testing.T) {
	svc, db := newTestService(t)
	user := createTestUser(t, db, "user@example.com", database.RoleUser)

	word := submitTestWord(t, svc, user, "γεια")

	updated, err := svc.Update(context.Background(), user, word.ID, SubmitRequest{
		GreekWord: "γεια",
		WordType:  database.WordTypeNoun,
		Meanings:  []MeaningInput{{EnglishMeaning: "greeting", IsPrimary: true}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Meanings, 1)
	assert.Equal(t, "greeting", updated.Meanings[0].EnglishMeaning)

	// The old meanings are gone, not merged.
	count, err := db.CountMeaningsForWord(context.Background(), word.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestApproveRejectTransitions(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, user, "γεια")

	_, err := svc.Approve(context.Background(), user, word.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Reject(context.Background(), user, word.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	rejected, err := svc.Reject(context.Background(), admin, word.ID)
	require.NoError(t, err)
	assert.Equal(t, database.ApprovalStatusRejected, rejected.ApprovalStatus)

	// No state check: a rejected word can still be approved.
	approved, err := svc.Approve(context.Background(), admin, word.ID)
	require.NoError(t, err)
	assert.Equal(t, database.ApprovalStatusApproved, approved.ApprovalStatus)

	_, err = svc.Approve(context.Background(), admin, word.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesMeanings(t *testing.T) {
	svc, db := newTestService(t)
	user := createTestUser(t, db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, db, "admin@example.com", database.RoleAdmin)

	word := submitTestWord(t, svc, user, "γεια")

	err := svc.Delete(context.Background(), user, word.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), admin, word.ID))

	count, err := db.CountMeaningsForWord(context.Background(), word.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	err = svc.Delete(context.Background(), admin, word.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVisibility(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	pending := submitTestWord(t, svc, user, "άλφα")
	approved := submitTestWord(t, svc, user, "βήτα")
	_, err := svc.Approve(context.Background(), admin, approved.ID)
	require.NoError(t, err)

	// Non-admins never see pending words, even when asking for them.
	page, err := svc.List(context.Background(), user, ListRequest{IncludePending: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, approved.ID, page.Items[0].ID)

	// Admins see pending words only when asking for them.
	page, err = svc.List(context.Background(), admin, ListRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	page, err = svc.List(context.Background(), admin, ListRequest{IncludePending: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, pending.ID, page.Items[0].ID) // άλφα sorts before βήτα
}

func TestListPagination(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	greek := []string{"άλφα", "βήτα", "γάμμα", "δέλτα", "έψιλον"}
	for i, w := range greek {
		word := submitTestWord(t, svc, user, fmt.Sprintf("%s %d", w, i))
		_, err := svc.Approve(context.Background(), admin, word.ID)
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), user, ListRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 2)

	page, err = svc.List(context.Background(), user, ListRequest{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	// Out-of-range pages are empty but keep the pagination math.
	page, err = svc.List(context.Background(), user, ListRequest{Page: 4, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Pages)

	// Size is clamped to the allowed range.
	page, err = svc.List(context.Background(), user, ListRequest{Page: 1, Size: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Size)
	assert.Equal(t, 1, page.Pages)
}

func TestListPaginationEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)

	page, err := svc.List(context.Background(), user, ListRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.Empty(t, page.Items)
}

func TestListSearchAndFilters(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	masc := database.GenderMasculine
	dog, err := svc.Submit(context.Background(), user, SubmitRequest{
		GreekWord: "σκύλος",
		WordType:  database.WordTypeNoun,
		Gender:    &masc,
		Meanings:  []MeaningInput{{EnglishMeaning: "dog", IsPrimary: true}},
	})
	require.NoError(t, err)
	run, err := svc.Submit(context.Background(), user, SubmitRequest{
		GreekWord: "τρέχω",
		WordType:  database.WordTypeVerb,
		Notes:     "common verb",
		Meanings:  []MeaningInput{{EnglishMeaning: "to run", IsPrimary: true}},
	})
	require.NoError(t, err)
	for _, id := range []uint{dog.ID, run.ID} {
		_, err := svc.Approve(context.Background(), admin, id)
		require.NoError(t, err)
	}

	// Search matches the English meaning, ignoring ASCII letter case. Greek
	// letter case only folds on postgres, see database.ListWords.
	page, err := svc.List(context.Background(), user, ListRequest{Search: "DOG"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "σκύλος", page.Items[0].GreekWord)

	// Search matches the notes.
	page, err = svc.List(context.Background(), user, ListRequest{Search: "common"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "τρέχω", page.Items[0].GreekWord)

	// Search matches the Greek spelling.
	page, err = svc.List(context.Background(), user, ListRequest{Search: "σκύλ"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	page, err = svc.List(context.Background(), user, ListRequest{WordType: database.WordTypeVerb})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "τρέχω", page.Items[0].GreekWord)

	page, err = svc.List(context.Background(), user, ListRequest{Gender: database.GenderMasculine})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "σκύλος", page.Items[0].GreekWord)

	page, err = svc.List(context.Background(), user, ListRequest{Search: "no such word"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestListPendingAdminOnly(t *testing.T) {
	svc, _ := newTestService(t)
	user := createTestUser(t, svc.db, "user@example.com", database.RoleUser)
	admin := createTestUser(t, svc.db, "admin@example.com", database.RoleAdmin)

	submitTestWord(t, svc, user, "γεια")

	_, err := svc.ListPending(context.Background(), user)
	assert.ErrorIs(t, err, ErrForbidden)

	pending, err := svc.ListPending(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
