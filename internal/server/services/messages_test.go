package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/convcrypto"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/events"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

var msgNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func newMessageSvc(t *testing.T, repo *fakeMessages, pub events.Publisher) *MessageService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(), pub, logging.Nop{})
	s.now = fixedClock(msgNow)
	return s
}

func sealed(t *testing.T, text, a, b string) string {
	t.Helper()
	env, err := convcrypto.Encrypt(text, a, b)
	require.NoError(t, err)
	return env
}

func TestSend_EncryptsStoresAndPublishes(t *testing.T) {
	repo := newFakeMessages()
	pub := &fakePublisher{}
	s := newMessageSvc(t, repo, pub)

	got, err := s.Send(context.Background(), "alice", "bob", "  hello there  ", ptr("listing-1"))
	require.NoError(t, err)

	assert.Equal(t, "hello there", got.Text)
	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.NotContains(t, stored.Content, "hello")
	assert.Equal(t, msgNow, stored.CreatedAt)
	assert.Equal(t, "listing-1", *stored.ListingID)

	plain, err := convcrypto.Decrypt(stored.Content, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "hello there", plain)

	require.Len(t, pub.got, 1)
	assert.Equal(t, events.MessageEvent{
		Type: events.MessageCreated, MessageID: stored.ID, SenderID: "alice", ReceiverID: "bob", At: msgNow,
	}, pub.got[0])
}

func TestSend_Validation(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		receiver string
		content  string
	}{
		{"empty", "a", "b", ""},
		{"whitespace only", "a", "b", " \n\t "},
		{"too long", "a", "b", strings.Repeat("é", common.MaxMessageLength+1)},
		{"self", "a", "a", "hi"},
		{"no receiver", "a", "", "hi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeMessages()
			pub := &fakePublisher{}

			_, err := newMessageSvc(t, repo, pub).Send(context.Background(), tc.sender, tc.receiver, tc.content, nil)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Empty(t, repo.created)
			assert.Empty(t, pub.got)
		})
	}
}

func TestSend_MaxLengthCountsCharacters(t *testing.T) {
	repo := newFakeMessages()

	_, err := newMessageSvc(t, repo, &fakePublisher{}).Send(context.Background(), "a", "b",
		strings.Repeat("é", common.MaxMessageLength), nil)
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestSend_EmptyListingIDIsDropped(t *testing.T) {
	repo := newFakeMessages()

	_, err := newMessageSvc(t, repo, &fakePublisher{}).Send(context.Background(), "a", "b", "hi", ptr(""))
	require.NoError(t, err)
	assert.Nil(t, repo.created[0].ListingID)
}

func TestSend_StoreErrorSkipsEvent(t *testing.T) {
	repo := newFakeMessages()
	repo.createErr = errors.New("db down")
	pub := &fakePublisher{}

	_, err := newMessageSvc(t, repo, pub).Send(context.Background(), "a", "b", "hi", nil)
	assert.ErrorContains(t, err, "db down")
	assert.Empty(t, pub.got)
}

func TestSend_PublishFailureIsLoggedOnly(t *testing.T) {
	var buf bytes.Buffer
	repo := newFakeMessages()
	db, _ := newSQLMockDB(t)
	s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(),
		&fakePublisher{err: errors.New("nats: timeout")}, logging.New(logging.FormatJSON, &buf))

	_, err := s.Send(context.Background(), "a", "b", "hi", nil)
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Contains(t, buf.String(), "failed to publish message event")
	assert.Contains(t, buf.String(), `"module":"messages"`)
}

func TestConversation_DecryptsAndMarksUnavailable(t *testing.T) {
	repo := newFakeMessages()
	repo.conversation = []*models.Message{
		{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: sealed(t, "first", "alice", "bob")},
		{ID: "m2", SenderID: "bob", ReceiverID: "alice", Content: "bm90IGFuIGVudmVsb3Bl"},
		{ID: "m3", SenderID: "bob", ReceiverID: "alice", Content: sealed(t, "third", "bob", "alice")},
	}

	got, err := newMessageSvc(t, repo, &fakePublisher{}).Conversation(context.Background(), "alice", "bob", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "first", got[0].Text)
	assert.False(t, got[0].Unavailable)
	assert.Equal(t, convcrypto.UnavailablePlaceholder, got[1].Text)
	assert.True(t, got[1].Unavailable)
	assert.Equal(t, "third", got[2].Text)
	assert.Equal(t, DefaultConversationLimit, repo.gotLimit)
}

func TestConversation_Limits(t *testing.T) {
	repo := newFakeMessages()
	s := newMessageSvc(t, repo, &fakePublisher{})

	_, err := s.Conversation(context.Background(), "a", "b", 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxConversationLimit, repo.gotLimit)

	_, err = s.Conversation(context.Background(), "a", "b", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.gotLimit)

	_, err = s.Conversation(context.Background(), "a", "a", 20)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestConversation_ParticipantOrderDoesNotMatter(t *testing.T) {
	repo := newFakeMessages()
	db, _ := newSQLMockDB(t)

	env := sealed(t, "hi", "alice", "bob")
	repo.conversation = []*models.Message{{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: env}}

	s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(convcrypto.WithLegacyKeys()),
		&fakePublisher{}, logging.Nop{})

	got, err := s.Conversation(context.Background(), "bob", "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, "hi", got[0].Text)
}

func TestConversations_Summaries(t *testing.T) {
	repo := newFakeMessages()
	repo.summaries = []*models.ConversationSummary{
		{CounterpartID: "bob", Unread: 2, Last: models.Message{ID: "m9", SenderID: "bob", ReceiverID: "alice",
			Content: sealed(t, "see you", "alice", "bob")}},
		{CounterpartID: "carol", Last: models.Message{ID: "m4", SenderID: "alice", ReceiverID: "carol",
			Content: "garbage"}},
	}

	got, err := newMessageSvc(t, repo, &fakePublisher{}).Conversations(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "bob", got[0].CounterpartID)
	assert.Equal(t, 2, got[0].Unread)
	assert.Equal(t, "see you", got[0].Last.Text)
	assert.True(t, got[1].Last.Unavailable)
}

func TestConversations_StoreError(t *testing.T) {
	repo := newFakeMessages()
	repo.selectErr = errors.New("boom")

	_, err := newMessageSvc(t, repo, &fakePublisher{}).Conversations(context.Background(), "alice")
	assert.ErrorContains(t, err, "boom")
}

func TestMarkRead(t *testing.T) {
	repo := newFakeMessages()
	repo.marked = 3
	s := newMessageSvc(t, repo, &fakePublisher{})

	n, err := s.MarkRead(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, [2]string{"alice", "bob"}, repo.gotMarkArg)

	_, err = s.MarkRead(context.Background(), "alice", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestEdit(t *testing.T) {
	own := &models.Message{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: "x"}
	gone := &models.Message{ID: "m2", SenderID: "alice", ReceiverID: "bob", Deleted: true}

	t.Run("sender re-encrypts", func(t *testing.T) {
		repo := newFakeMessages(own)
		pub := &fakePublisher{}
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(), pub, logging.Nop{})
		s.now = fixedClock(msgNow)

		got, err := s.Edit(context.Background(), "alice", "m1", " fixed typo ")
		require.NoError(t, err)
		assert.Equal(t, "fixed typo", got.Text)
		assert.True(t, got.Edited)
		assert.Equal(t, msgNow, *got.EditedAt)

		plain, err := convcrypto.Decrypt(repo.updated["m1"], "alice", "bob")
		require.NoError(t, err)
		assert.Equal(t, "fixed typo", plain)

		require.Len(t, pub.got, 1)
		assert.Equal(t, events.MessageUpdated, pub.got[0].Type)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	failing := []struct {
		name   string
		user   string
		id     string
		target error
	}{
		{"not the sender", "bob", "m1", common.ErrorForbidden},
		{"missing", "alice", "nope", common.ErrorNotFound},
		{"deleted", "alice", "m2", common.ErrorNotFound},
	}
	for _, tc := range failing {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeMessages(own, gone)
			pub := &fakePublisher{}
			db, mock := newSQLMockDB(t)
			mock.ExpectBegin()
			mock.ExpectRollback()
			s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(), pub, logging.Nop{})

			_, err := s.Edit(context.Background(), tc.user, tc.id, "new")
			assert.ErrorIs(t, err, tc.target)
			assert.Empty(t, repo.updated)
			assert.Empty(t, pub.got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("validation before any query", func(t *testing.T) {
		repo := newFakeMessages(own)
		_, err := newMessageSvc(t, repo, &fakePublisher{}).Edit(context.Background(), "alice", "m1", "   ")
		assert.ErrorIs(t, err, common.ErrorValidation)
	})
}

func TestDelete(t *testing.T) {
	own := &models.Message{ID: "m1", SenderID: "alice", ReceiverID: "bob"}

	t.Run("sender", func(t *testing.T) {
		repo := newFakeMessages(own)
		pub := &fakePublisher{}
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(), pub, logging.Nop{})

		require.NoError(t, s.Delete(context.Background(), "alice", "m1"))
		assert.Equal(t, []string{"m1"}, repo.deleted)
		require.Len(t, pub.got, 1)
		assert.Equal(t, events.MessageDeleted, pub.got[0].Type)
		assert.Equal(t, "bob", pub.got[0].ReceiverID)
	})

	t.Run("receiver cannot delete", func(t *testing.T) {
		repo := newFakeMessages(own)
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		s := NewMessageService(db, &fakeRepoManager{messages: repo}, convcrypto.New(), &fakePublisher{}, logging.Nop{})

		err := s.Delete(context.Background(), "bob", "m1")
		assert.ErrorIs(t, err, common.ErrorForbidden)
		assert.Empty(t, repo.deleted)
	})
}
