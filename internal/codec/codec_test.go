package codec

import (
	"testing"
	"time"

	"github.com/matsen/nk/internal/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotes() []note.Note {
	t0 := time.Date(2026, 3, 15, 9, 30, 0, 123456789, time.UTC)
	return []note.Note{
		{ID: 2, Content: "Write report", Tags: note.Tags{}, CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(2 * time.Hour)},
		{ID: 0, Content: "Buy milk", Tags: note.Tags{"home", "errand"}, CreatedAt: t0, UpdatedAt: t0},
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"notes.json", FormatJSON},
		{"notes", FormatJSON},
		{"/tmp/x/notes.yml", FormatYAML},
		{"NOTES.YAML", FormatYAML},
		{"notes.txt", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFor(tt.path), tt.path)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(sampleNotes(), f)
			require.NoError(t, err)

			got, err := Decode(data, f)
			require.NoError(t, err)
			require.Len(t, got, 2)

			// Encoded in id order
			assert.Equal(t, 0, got[0].ID)
			assert.Equal(t, 2, got[1].ID)

			want := sampleNotes()
			assert.Equal(t, want[1].Content, got[0].Content)
			assert.True(t, want[1].Tags.Equal(got[0].Tags))
			assert.True(t, want[1].CreatedAt.Equal(got[0].CreatedAt))
			assert.True(t, want[0].UpdatedAt.Equal(got[1].UpdatedAt))
			assert.NotNil(t, got[1].Tags)
		})
	}
}

func TestEncode_EmptyTagsAsList(t *testing.T) {
	data, err := Encode([]note.Note{{ID: 0, Content: "x"}}, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags": []`)
	assert.NotContains(t, string(data), "null")
}

func TestDecode_Empty(t *testing.T) {
	for _, input := range []string{"", "   \n\t"} {
		notes, err := Decode([]byte(input), FormatJSON)
		require.NoError(t, err)
		assert.Empty(t, notes)
	}

	notes, err := Decode([]byte(`{"notes": []}`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDecode_ToleratesUnknownFields(t *testing.T) {
	input := `{
		"version": 2,
		"free_ids": [4, 7],
		"notes": [
			{"id": 1, "content": "hello", "color": "blue"}
		]
	}`
	notes, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 1, notes[0].ID)
	assert.Equal(t, "hello", notes[0].Content)
	assert.True(t, notes[0].CreatedAt.IsZero())
	assert.NotNil(t, notes[0].Tags)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{"not json", `{notes: [`, FormatJSON},
		{"top-level array", `[]`, FormatJSON},
		{"missing notes", `{"other": 1}`, FormatJSON},
		{"null notes", `{"notes": null}`, FormatJSON},
		{"missing id", `{"notes": [{"content": "x"}]}`, FormatJSON},
		{"missing content", `{"notes": [{"id": 0}]}`, FormatJSON},
		{"string id", `{"notes": [{"id": "0", "content": "x"}]}`, FormatJSON},
		{"fractional id", `{"notes": [{"id": 1.5, "content": "x"}]}`, FormatJSON},
		{"negative id", `{"notes": [{"id": -1, "content": "x"}]}`, FormatJSON},
		{"numeric content", `{"notes": [{"id": 0, "content": 12}]}`, FormatJSON},
		{"tags not list", `{"notes": [{"id": 0, "content": "x", "tags": "a"}]}`, FormatJSON},
		{"bad timestamp", `{"notes": [{"id": 0, "content": "x", "created_at": "yesterday"}]}`, FormatJSON},
		{"duplicate id", `{"notes": [{"id": 1, "content": "a"}, {"id": 1, "content": "b"}]}`, FormatJSON},
		{"updated before created", `{"notes": [{"id": 0, "content": "x",
			"created_at": "2026-01-02T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z"}]}`, FormatJSON},
		{"yaml duplicate id", "notes:\n  - id: 3\n    content: a\n  - id: 3\n    content: b\n", FormatYAML},
		{"yaml wrong type", "notes:\n  - id: abc\n    content: a\n", FormatYAML},
		{"yaml missing notes", "other: 1\n", FormatYAML},
		{"blank tag", `{"notes": [{"id": 0, "content": "x", "tags": ["a", " "]}]}`, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestDecode_PartialTimestamps(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"created only", `{"notes": [{"id": 0, "content": "x", "created_at": "2024-01-01T00:00:00Z"}]}`},
		{"updated only", `{"notes": [{"id": 0, "content": "x", "updated_at": "2024-01-01T00:00:00Z"}]}`},
		{"yaml created only", "notes:\n  - id: 0\n    content: x\n    created_at: 2024-01-01T00:00:00Z\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FormatJSON
			if tt.input[0] != '{' {
				f = FormatYAML
			}
			notes, err := Decode([]byte(tt.input), f)
			require.NoError(t, err)
			require.Len(t, notes, 1)
			assert.True(t, notes[0].CreatedAt.Equal(t0), "created_at = %v", notes[0].CreatedAt)
			assert.True(t, notes[0].UpdatedAt.Equal(t0), "updated_at = %v", notes[0].UpdatedAt)
		})
	}
}

func TestDecode_NormalizesTags(t *testing.T) {
	input := `{"notes": [{"id": 0, "content": "x", "tags": ["a", " b ", "a", "b"]}]}`
	notes, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.Tags{"a", "b"}, notes[0].Tags)
}
