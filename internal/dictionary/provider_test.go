package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name     string
	phonetic string
	err      error
	calls    int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Lookup(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.phonetic, f.err
}

func TestChain_FirstSuccessWins(t *testing.T) {
	missing := &fakeProvider{name: "a", err: &NotFoundError{Word: "current"}}
	found := &fakeProvider{name: "b", phonetic: "/ˈkʌrənt/"}
	unused := &fakeProvider{name: "c", phonetic: "/x/"}

	chain := NewChain(nil, missing, found, unused)
	phonetic, err := chain.Lookup(context.Background(), "current")

	require.NoError(t, err)
	assert.Equal(t, "/ˈkʌrənt/", phonetic)
	assert.Equal(t, 1, missing.calls)
	assert.Equal(t, 1, found.calls)
	assert.Zero(t, unused.calls)
}

func TestChain_AllMissing(t *testing.T) {
	chain := NewChain(nil,
		&fakeProvider{name: "a", err: &NotFoundError{Word: "zzyzx"}},
		&fakeProvider{name: "b", err: &NotFoundError{Word: "zzyzx"}},
	)

	_, err := chain.Lookup(context.Background(), "zzyzx")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "zzyzx", notFound.Word)
}

func TestChain_FailureReported(t *testing.T) {
	boom := errors.New("connection refused")
	chain := NewChain(nil,
		&fakeProvider{name: "a", err: boom},
		&fakeProvider{name: "b", err: &NotFoundError{Word: "current"}},
	)

	_, err := chain.Lookup(context.Background(), "current")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "chain(a,b)", lookupErr.Provider)
}

func TestChain_FailureThenSuccess(t *testing.T) {
	chain := NewChain(nil,
		&fakeProvider{name: "a", err: errors.New("timeout")},
		&fakeProvider{name: "b", phonetic: "/ˈtiːtʃər/"},
	)

	phonetic, err := chain.Lookup(context.Background(), "teacher")
	require.NoError(t, err)
	assert.Equal(t, "/ˈtiːtʃər/", phonetic)
}

func TestChain_EmptyWord(t *testing.T) {
	p := &fakeProvider{name: "a", phonetic: "/x/"}
	_, err := NewChain(nil, p).Lookup(context.Background(), "  ")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Zero(t, p.calls)
}

func TestChain_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &fakeProvider{name: "a", phonetic: "/x/"}
	_, err := NewChain(nil, p).Lookup(ctx, "current")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, p.calls)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, `no transcription for "x" from html`, (&NotFoundError{Word: "x", Provider: "html"}).Error())
	assert.Equal(t, `no transcription for "x"`, (&NotFoundError{Word: "x"}).Error())

	cause := errors.New("boom")
	err := &LookupError{Word: "x", Provider: "llm", Cause: cause}
	assert.Equal(t, `llm lookup for "x" failed: boom`, err.Error())
	assert.ErrorIs(t, err, cause)
}
