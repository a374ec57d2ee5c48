package dspace

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/beevik/etree"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// MetadataRecord is a single descriptive field of an item.
type MetadataRecord struct {
	Key      string `json:"key" mapstructure:"key"`
	Value    string `json:"value" mapstructure:"value"`
	Language string `json:"language" mapstructure:"language"`
}

// MetadataEntry is the list of records DSpace reads and writes for an item.
type MetadataEntry []MetadataRecord

var metadataRecordType = reflect.TypeOf(MetadataRecord{})

// ValidateMetadataEntry checks that entry is a list whose every element is a
// record: a MetadataRecord or a string-keyed map. All offending elements are
// reported.
func ValidateMetadataEntry(entry any) error {
	if entry == nil {
		return fmt.Errorf("%w: metadata entry is required", ErrInvalidRequest)
	}

	v := reflect.ValueOf(entry)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("%w: metadata entry must be a list, got %T", ErrInvalidRequest, entry)
	}
	if v.Kind() == reflect.Slice && v.IsNil() {
		return fmt.Errorf("%w: metadata entry is required", ErrInvalidRequest)
	}

	var result *multierror.Error
	for i := 0; i < v.Len(); i++ {
		if !isRecord(v.Index(i)) {
			result = multierror.Append(result,
				fmt.Errorf("element %d is not a record (%s)", i, describe(v.Index(i))))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: invalid metadata entry: %w", ErrInvalidRequest, err)
	}

	return nil
}

func isRecord(v reflect.Value) bool {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		return v.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return v.Type() == metadataRecordType
	default:
		return false
	}
}

func describe(v reflect.Value) string {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "nil"
		}
		v = v.Elem()
	}
	return v.Type().String()
}

// ParseMetadataEntry converts a decoded JSON value into a MetadataEntry. It
// accepts the bare list returned by items/{id}/metadata as well as an item
// object carrying a "metadata" list, as returned by an expanded handle
// lookup.
func ParseMetadataEntry(v any) (MetadataEntry, error) {
	if item, ok := v.(map[string]any); ok {
		md, ok := item["metadata"]
		if !ok {
			return nil, fmt.Errorf("%w: item has no metadata field", ErrDecode)
		}
		v = md
	}

	if err := ValidateMetadataEntry(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var entry MetadataEntry
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &entry,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating metadata decoder: %w", err)
	}
	if err := decoder.Decode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return entry, nil
}

// Metadata extracts the metadata records from a decoded response.
func Metadata(p Payload) (MetadataEntry, error) {
	switch p := p.(type) {
	case Structured:
		return ParseMetadataEntry(p.Data)
	case Tree:
		return metadataFromTree(p.Root), nil
	default:
		return nil, fmt.Errorf("%w: %T carries no metadata", ErrDecode, p)
	}
}

// metadataFromTree collects every element that has a key child, in document
// order.
func metadataFromTree(root *etree.Element) MetadataEntry {
	entry := MetadataEntry{}

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if key := el.SelectElement("key"); key != nil {
			entry = append(entry, MetadataRecord{
				Key:      key.Text(),
				Value:    childText(el, "value"),
				Language: childText(el, "language"),
			})
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)

	return entry
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}

// MetadataValues returns the non-empty values recorded under field, in
// source order. Repeating fields yield several values.
func MetadataValues(entry MetadataEntry, field string) []string {
	return lo.FilterMap(entry, func(r MetadataRecord, _ int) (string, bool) {
		return r.Value, r.Key == field && r.Value != ""
	})
}

// ItemID returns the internal id of the item described by a metadata
// response.
func ItemID(p Payload) (string, error) {
	switch p := p.(type) {
	case Structured:
		item, ok := p.Data.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: expected an item object, got %T", ErrDecode, p.Data)
		}
		switch id := item["id"].(type) {
		case string:
			if id != "" {
				return id, nil
			}
		case float64:
			return strconv.FormatFloat(id, 'f', -1, 64), nil
		}
		return "", fmt.Errorf("%w: item has no id", ErrDecode)
	case Tree:
		if id := p.Root.SelectElement("id"); id != nil && id.Text() != "" {
			return id.Text(), nil
		}
		return "", fmt.Errorf("%w: item has no id element", ErrDecode)
	default:
		return "", fmt.Errorf("%w: %T does not describe an item", ErrDecode, p)
	}
}
