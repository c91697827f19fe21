package engagement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boostoracle/internal/domain"
	"boostoracle/internal/engagement/ports"
)

// fakeIndex serves canned pages per endpoint, keyed by cursor.
type fakeIndex struct {
	amplifications map[string]ports.Page
	posts          map[string]ports.Page
	reactions      map[string]ports.Page
	err            error
}

func (f *fakeIndex) page(m map[string]ports.Page, cursor string) (ports.Page, error) {
	if f.err != nil {
		return ports.Page{}, f.err
	}
	return m[cursor], nil
}

func (f *fakeIndex) Amplifications(_ context.Context, _ domain.ContentRef, cursor string) (ports.Page, error) {
	return f.page(f.amplifications, cursor)
}

func (f *fakeIndex) PostsByAuthor(_ context.Context, _ domain.Identity, cursor string) (ports.Page, error) {
	return f.page(f.posts, cursor)
}

func (f *fakeIndex) Reactions(_ context.Context, _ domain.ContentRef, cursor string) (ports.Page, error) {
	return f.page(f.reactions, cursor)
}

func TestNewRequiresIndex(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestLocateAmplifyMatchesResponderOnly(t *testing.T) {
	idx := &fakeIndex{amplifications: map[string]ports.Page{
		"": {Items: []ports.Event{
			{Author: 9, CreatedAtMs: 100},
			{Author: 42, CreatedAtMs: 200},
		}},
	}}
	l, err := New(idx)
	require.NoError(t, err)

	ts, found := l.Locate(context.Background(), domain.KindAmplify, 42, "0xcafe")
	assert.True(t, found)
	assert.Equal(t, int64(200), ts)

	_, found = l.Locate(context.Background(), domain.KindAmplify, 7, "0xcafe")
	assert.False(t, found)
}

func TestLocateQuoteRequiresEmbedMatch(t *testing.T) {
	idx := &fakeIndex{posts: map[string]ports.Page{
		"": {Items: []ports.Event{
			// Authored by the responder but quoting something else.
			{Author: 42, Embeds: []domain.ContentRef{"0xother"}, CreatedAtMs: 50},
		}, NextCursor: "p2"},
		"p2": {Items: []ports.Event{
			{Author: 42, Embeds: []domain.ContentRef{"0xother", "0xcafe"}, CreatedAtMs: 75},
		}},
	}}
	l, err := New(idx)
	require.NoError(t, err)

	ts, found := l.Locate(context.Background(), domain.KindQuote, 42, "0xcafe")
	assert.True(t, found)
	assert.Equal(t, int64(75), ts)

	_, found = l.Locate(context.Background(), domain.KindQuote, 42, "0xmissing")
	assert.False(t, found)
}

func TestLocateReactUsesReactionTimestamp(t *testing.T) {
	idx := &fakeIndex{reactions: map[string]ports.Page{
		"": {Items: []ports.Event{
			{Author: 42, CreatedAtMs: 10, ReactedAtMs: 90},
		}},
	}}
	l, err := New(idx)
	require.NoError(t, err)

	ts, found := l.Locate(context.Background(), domain.KindReact, 42, "0xcafe")
	assert.True(t, found)
	assert.Equal(t, int64(90), ts)
}

func TestLocateDegradesErrorsToNotFound(t *testing.T) {
	idx := &fakeIndex{err: errors.New("upstream 503")}
	l, err := New(idx)
	require.NoError(t, err)

	for _, kind := range []domain.EngagementKind{domain.KindAmplify, domain.KindQuote, domain.KindReact} {
		_, found := l.Locate(context.Background(), kind, 42, "0xcafe")
		assert.False(t, found, "kind %s", kind)
	}
}

func TestLocateHonorsPageBudget(t *testing.T) {
	// Every page points to another page; the budget has to stop the scan.
	idx := &fakeIndex{amplifications: map[string]ports.Page{
		"":     {NextCursor: "loop"},
		"loop": {NextCursor: "loop"},
	}}
	l, err := New(idx, WithMaxPages(5))
	require.NoError(t, err)

	_, found := l.Locate(context.Background(), domain.KindAmplify, 42, "0xcafe")
	assert.False(t, found)
}
