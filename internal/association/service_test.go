package association

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/smart-selector/config"
	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
	"github.com/gcbaptista/smart-selector/internal/testutil"
	"github.com/gcbaptista/smart-selector/model"
	"github.com/gcbaptista/smart-selector/services"
)

// --- Test Helpers ---

func newTestService(rng testutil.FixedSource) *Service {
	return NewService(config.MatcherSettings{}, rng)
}

// --- Test Cases ---

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantErr   bool
		wantField string
		want      model.AssociationRequest
	}{
		{
			name:    "valid request",
			payload: `{"strings": ["I like alf."], "files": ["alf_picture.png"]}`,
			want:    model.AssociationRequest{Strings: []string{"I like alf."}, Files: []string{"alf_picture.png"}},
		},
		{
			name:    "empty files allowed",
			payload: `{"strings": ["hello"], "files": []}`,
			want:    model.AssociationRequest{Strings: []string{"hello"}, Files: []string{}},
		},
		{
			name:    "extra fields ignored",
			payload: `{"strings": ["hello"], "files": [], "images": ["x.png"]}`,
			want:    model.AssociationRequest{Strings: []string{"hello"}, Files: []string{}},
		},
		{name: "not JSON", payload: `strings=hello`, wantErr: true},
		{name: "JSON array", payload: `["hello"]`, wantErr: true},
		{name: "JSON null", payload: `null`, wantErr: true},
		{name: "empty payload", payload: ``, wantErr: true},
		{name: "missing files", payload: `{"strings": ["hello"]}`, wantErr: true, wantField: "files"},
		{name: "missing strings", payload: `{"files": ["a.png"]}`, wantErr: true, wantField: "strings"},
		{name: "missing both", payload: `{}`, wantErr: true, wantField: "strings"},
		{name: "empty strings", payload: `{"strings": [], "files": ["a.png"]}`, wantErr: true, wantField: "strings"},
		{name: "null strings", payload: `{"strings": null, "files": []}`, wantErr: true, wantField: "strings"},
		{name: "null files", payload: `{"strings": ["a"], "files": null}`, wantErr: true, wantField: "files"},
		{name: "files not a list", payload: `{"strings": ["a"], "files": "a.png"}`, wantErr: true, wantField: "files"},
		{name: "strings not a list", payload: `{"strings": "a", "files": []}`, wantErr: true, wantField: "strings"},
		{name: "non-string element", payload: `{"strings": ["a", 3], "files": []}`, wantErr: true, wantField: "strings"},
		{name: "null element", payload: `{"strings": ["a"], "files": [null]}`, wantErr: true, wantField: "files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest([]byte(tt.payload))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrFormat), "expected ErrFormat, got %v", err)

			var formatErr *apperrors.FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.wantField, formatErr.Field)
		})
	}
}

func TestParseKeywordsRequest(t *testing.T) {
	req, err := ParseKeywordsRequest([]byte(`{"files": ["a_b.png"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b.png"}, req.Files)

	_, err = ParseKeywordsRequest([]byte(`{"files": 1}`))
	assert.ErrorIs(t, err, apperrors.ErrFormat)

	_, err = ParseKeywordsRequest([]byte(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrFormat)
}

func TestService_Associate(t *testing.T) {
	testutil.RunAssociationCases(t, newTestService(0), testutil.BasicAssociationCases())
}

func TestHandle_ScenarioA(t *testing.T) {
	svc := newTestService(0)

	reply := svc.Handle([]byte(`{"strings": ["I like alf."], "files": ["alf_picture.png", "default.png"]}`))
	require.True(t, reply.OK())
	assert.Equal(t, model.Associations{"I like alf.": "alf_picture.png"}, reply.Associations)
}

func TestHandle_ScenarioB(t *testing.T) {
	svc := newTestService(0)

	reply := svc.Handle([]byte(`{"strings": ["What's up?"], "files": ["default.png"]}`))
	require.True(t, reply.OK())
	assert.Equal(t, model.Associations{"What's up?": model.DefaultChoice}, reply.Associations)
}

func TestHandle_ScenarioC(t *testing.T) {
	payload := []byte(`{"strings": ["I have a dog and a cat"], "files": ["dog_photo.png", "cat_photo.png"]}`)

	first := newTestService(0).Handle(payload)
	require.True(t, first.OK())
	assert.Equal(t, "dog_photo.png", first.Associations["I have a dog and a cat"])

	second := newTestService(1).Handle(payload)
	require.True(t, second.OK())
	assert.Equal(t, "cat_photo.png", second.Associations["I have a dog and a cat"])
}

func TestHandle_ScenarioD(t *testing.T) {
	svc := newTestService(0)

	reply := svc.Handle([]byte(`{"strings": [], "files": ["a.png"]}`))
	assert.Equal(t, services.ReplyFormatError, reply.Kind)
	assert.False(t, reply.OK())
	assert.Nil(t, reply.Associations)
	assert.ErrorIs(t, reply.Err, apperrors.ErrFormat)
}

func TestHandle_EmptyFilesGivesAllSentinels(t *testing.T) {
	svc := newTestService(0)

	reply := svc.Handle([]byte(`{"strings": ["dog", "cat"], "files": []}`))
	require.True(t, reply.OK())
	assert.Equal(t, model.Associations{"dog": model.DefaultChoice, "cat": model.DefaultChoice}, reply.Associations)
}

func TestHandle_OneEntryPerQuery(t *testing.T) {
	svc := NewService(config.MatcherSettings{}, nil)

	queries := []string{"You have a dog.", "What's up?", "You have a baby.", "I like alf."}
	files := []string{"alf_picture.png", "dog_photo.png", "baby_shower.png", "default.png"}

	got := svc.Associate(model.AssociationRequest{Strings: queries, Files: files})
	require.Len(t, got, len(queries))
	for _, q := range queries {
		assert.Contains(t, got, q)
	}
	assert.Equal(t, model.DefaultChoice, got["What's up?"])
}

func TestHandle_DeterministicWithSeed(t *testing.T) {
	payload := []byte(`{"strings": ["dog cat bird", "cat bird", "sunny dog"], "files": ["dog.png", "cat.png", "bird.png", "sunny_dog.png"]}`)
	settings := config.MatcherSettings{Seed: 1234}

	first := NewService(settings, nil).Handle(payload)
	require.True(t, first.OK())
	for i := 0; i < 5; i++ {
		again := NewService(settings, nil).Handle(payload)
		assert.Equal(t, first.Associations, again.Associations)
	}
}

func TestService_CustomSettings(t *testing.T) {
	svc := NewService(config.MatcherSettings{
		Stopwords:         []string{"photo"},
		MinTokenLength:    4,
		ExtensionStrategy: config.ExtensionLastDot,
	}, testutil.FixedSource(0))

	// "cat" is too short and "photo" is a stopword
	got := svc.Associate(model.AssociationRequest{Strings: []string{"cat photo"}, Files: []string{"cat_photo.jpeg"}})
	assert.Equal(t, model.DefaultChoice, got["cat photo"])

	// "jpeg" is no longer a subtoken under the last-dot rule
	got = svc.Associate(model.AssociationRequest{Strings: []string{"jpeg"}, Files: []string{"summer.jpeg"}})
	assert.Equal(t, "summer.jpeg", got["jpeg"], "forward pass still sees the full name")
}

func TestService_Keywords(t *testing.T) {
	svc := newTestService(0)
	assert.Equal(t, []string{"dog", "photo", "cat"}, svc.Keywords([]string{"dog_photo.png", "cat_photo.png", "ab.png"}))
}

func TestService_KeywordsSkipStopwords(t *testing.T) {
	svc := NewService(config.MatcherSettings{Stopwords: []string{"photo"}, MinTokenLength: 4}, testutil.FixedSource(0))
	assert.Equal(t, []string{"summer"}, svc.Keywords([]string{"cat_photo.png", "Photo_summer.png"}))
}

func TestService_SettingsCopy(t *testing.T) {
	svc := newTestService(0)
	settings := svc.Settings()
	settings.Stopwords[0] = "changed"
	assert.Equal(t, "the", svc.Settings().Stopwords[0])
}
