package dspace

import (
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataValues(t *testing.T) {
	entry := MetadataEntry{
		{Key: "dc.contributor.author", Value: "Doe, Jane", Language: ""},
		{Key: "dc.title", Value: "A Title", Language: "en"},
		{Key: "dc.contributor.author", Value: "", Language: ""},
		{Key: "dc.contributor.author", Value: "Roe, Richard", Language: ""},
		{Key: "dc.subject", Value: "", Language: "en"},
	}

	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{name: "repeating field in order", field: "dc.contributor.author", want: []string{"Doe, Jane", "Roe, Richard"}},
		{name: "single field", field: "dc.title", want: []string{"A Title"}},
		{name: "only empty values", field: "dc.subject", want: []string{}},
		{name: "no match", field: "dc.date.issued", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetadataValues(entry, tt.field)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadataValues_EmptyEntry(t *testing.T) {
	got := MetadataValues(nil, "dc.title")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseMetadataEntry(t *testing.T) {
	var list any
	require.NoError(t, json.Unmarshal([]byte(`[
		{"key": "dc.title", "value": "A Title", "language": "en"},
		{"key": "dc.date.issued", "value": 2019, "language": null}
	]`), &list))

	entry, err := ParseMetadataEntry(list)
	require.NoError(t, err)
	assert.Equal(t, MetadataEntry{
		{Key: "dc.title", Value: "A Title", Language: "en"},
		{Key: "dc.date.issued", Value: "2019", Language: ""},
	}, entry)
}

func TestParseMetadataEntry_ExpandedItem(t *testing.T) {
	var item any
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 17,
		"name": "A Title",
		"handle": "123456789/1",
		"metadata": [{"key": "dc.title", "value": "A Title", "language": "en"}]
	}`), &item))

	entry, err := ParseMetadataEntry(item)
	require.NoError(t, err)
	assert.Equal(t, MetadataEntry{{Key: "dc.title", Value: "A Title", Language: "en"}}, entry)
}

func TestParseMetadataEntry_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "item without metadata", value: map[string]any{"id": 1.0}},
		{name: "not a list", value: "dc.title"},
		{name: "list of strings", value: []any{"dc.title"}},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetadataEntry(tt.value)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestMetadata_Tree(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<metadataEntries>
		<metadataentry><key>dc.title</key><value>A Title</value><language>en</language></metadataentry>
		<metadataentry><key>dc.subject</key><value>testing</value></metadataentry>
	</metadataEntries>`))

	entry, err := Metadata(Tree{Root: doc.Root()})
	require.NoError(t, err)
	assert.Equal(t, MetadataEntry{
		{Key: "dc.title", Value: "A Title", Language: "en"},
		{Key: "dc.subject", Value: "testing", Language: ""},
	}, entry)
}

func TestMetadata_LoginToken(t *testing.T) {
	_, err := Metadata(LoginToken("abc123"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestItemID(t *testing.T) {
	xmlDoc := etree.NewDocument()
	require.NoError(t, xmlDoc.ReadFromString(`<item><id>17</id><handle>123456789/1</handle></item>`))

	emptyDoc := etree.NewDocument()
	require.NoError(t, emptyDoc.ReadFromString(`<item><handle>123456789/1</handle></item>`))

	tests := []struct {
		name      string
		payload   Payload
		want      string
		wantError bool
	}{
		{name: "json numeric id", payload: Structured{Data: map[string]any{"id": 17.0}}, want: "17"},
		{name: "json uuid", payload: Structured{Data: map[string]any{"id": "a1b2"}}, want: "a1b2"},
		{name: "json without id", payload: Structured{Data: map[string]any{"name": "x"}}, wantError: true},
		{name: "json list", payload: Structured{Data: []any{}}, wantError: true},
		{name: "xml id", payload: Tree{Root: xmlDoc.Root()}, want: "17"},
		{name: "xml without id", payload: Tree{Root: emptyDoc.Root()}, wantError: true},
		{name: "login token", payload: LoginToken("abc"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ItemID(tt.payload)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
