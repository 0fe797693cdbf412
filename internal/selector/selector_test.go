package selector

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/smart-selector/internal/matcher"
	"github.com/gcbaptista/smart-selector/model"
)

// fixedSource always returns the same index (clamped to n-1).
type fixedSource struct {
	index int
	calls int
}

func (f *fixedSource) Intn(n int) int {
	f.calls++
	if f.index >= n {
		return n - 1
	}
	return f.index
}

func TestSelect_EmptySetGetsSentinel(t *testing.T) {
	got := Select(matcher.Associations{"What's up?": {}}, &fixedSource{})
	assert.Equal(t, map[string]string{"What's up?": model.DefaultChoice}, got)
}

func TestSelect_SingleMatch(t *testing.T) {
	src := &fixedSource{}
	got := Select(matcher.Associations{"I like alf.": {"alf_picture.png"}}, src)
	assert.Equal(t, map[string]string{"I like alf.": "alf_picture.png"}, got)
}

func TestSelect_UsesRandomSource(t *testing.T) {
	associations := matcher.Associations{
		"I have a dog and a cat": {"dog_photo.png", "cat_photo.png"},
	}

	first := Select(associations, &fixedSource{index: 0})
	assert.Equal(t, "dog_photo.png", first["I have a dog and a cat"])

	second := Select(associations, &fixedSource{index: 1})
	assert.Equal(t, "cat_photo.png", second["I have a dog and a cat"])
}

func TestSelect_OneEntryPerQuery(t *testing.T) {
	associations := matcher.Associations{
		"a": {"x.png", "y.png"},
		"b": {},
		"c": {"z.png"},
	}
	src := &fixedSource{index: 5}
	got := Select(associations, src)

	require.Len(t, got, 3)
	assert.Contains(t, associations["a"], got["a"])
	assert.Equal(t, model.DefaultChoice, got["b"])
	assert.Equal(t, "z.png", got["c"])
	// The source is not consulted for empty sets
	assert.Equal(t, 2, src.calls)
}

func TestSelect_DeterministicWithSeed(t *testing.T) {
	associations := matcher.Associations{
		"q1": {"a", "b", "c", "d"},
		"q2": {"e", "f", "g"},
		"q3": {"h", "i"},
	}

	first := Select(associations, NewLockedSource(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Select(associations, NewLockedSource(42)))
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, model.DefaultChoice, Pick(nil, &fixedSource{}))
	assert.Equal(t, "b", Pick([]string{"a", "b"}, &fixedSource{index: 1}))
}

func TestLockedSource_Concurrent(t *testing.T) {
	src := NewLockedSource(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := src.Intn(3)
				if n < 0 || n >= 3 {
					t.Errorf("Intn(3) returned %d", n)
				}
			}
		}()
	}
	wg.Wait()
}
