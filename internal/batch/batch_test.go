package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jonathan/syllabify/internal/syllable"
	"github.com/jonathan/syllabify/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResult(t *testing.T) {
	seg := syllable.NewSegmenter(syllable.DefaultRules())

	res := Result(seg, types.WordEntry{Word: "current", Phonetic: "/ˈkʌrənt/"})
	assert.Equal(t, types.SegmentResult{
		Word:      "current",
		Phonetic:  "/ˈkʌrənt/",
		Syllables: "cur·rent",
		Parts:     []string{"cur", "rent"},
		Segmented: true,
	}, res)

	res = Result(seg, types.WordEntry{Word: "make", Phonetic: "/meɪk/"})
	assert.False(t, res.Segmented)
	assert.Equal(t, "make", res.Syllables)
	assert.Equal(t, []string{"make"}, res.Parts)
}

func TestSegment_PreservesOrder(t *testing.T) {
	seg := syllable.NewSegmenter(syllable.DefaultRules())

	base := []types.WordEntry{
		{Word: "repository", Phonetic: "/rɪˈpɑːzətɔːri/"},
		{Word: "current", Phonetic: "/ˈkʌrənt/"},
		{Word: "teacher", Phonetic: "/ˈtiːtʃər/"},
		{Word: "make", Phonetic: "/meɪk/"},
	}
	want := []string{"re·pos·i·to·ry", "cur·rent", "tea·cher", "make"}

	var entries []types.WordEntry
	for range 50 {
		entries = append(entries, base...)
	}

	for _, workers := range []int{0, 1, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			results, err := Segment(context.Background(), seg, entries, workers)
			require.NoError(t, err)
			require.Len(t, results, len(entries))
			for i, r := range results {
				assert.Equal(t, want[i%len(want)], r.Syllables)
				assert.Equal(t, entries[i].Word, r.Word)
			}
		})
	}
}

func TestSegment_Empty(t *testing.T) {
	seg := syllable.NewSegmenter(syllable.DefaultRules())
	results, err := Segment(context.Background(), seg, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSegment_Cancelled(t *testing.T) {
	seg := syllable.NewSegmenter(syllable.DefaultRules())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []types.WordEntry{{Word: "current", Phonetic: "/ˈkʌrənt/"}}
	results, err := Segment(ctx, seg, entries, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
