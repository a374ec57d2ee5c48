package dspace

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Endpoint paths relative to the API base URL.
const (
	loginPath  = "login"
	statusPath = "status"
	handlePath = "handle"
	itemsPath  = "items"
)

// Request describes one logical API operation before it is bound to a
// transport: the method, the path relative to the base URL, and the
// serialized body.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Validate checks that the method is one the DSpace API accepts and that a
// path is set.
func (r Request) Validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut:
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidRequest, r.Method)
	}

	if strings.TrimLeft(r.Path, "/") == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidRequest)
	}

	return nil
}

func (r Request) String() string {
	return r.Method + " " + r.Path
}

// ItemRef identifies an item either by handle or by internal id. The handle
// takes precedence when both are set.
type ItemRef struct {
	Handle string
	ID     string
}

// credentials is the login body. Field order is part of the wire format.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Connect returns the login request for the given e-person credentials.
func Connect(email, password string) Request {
	// Marshalling two strings cannot fail.
	body, _ := json.Marshal(credentials{Email: email, Password: password})

	return Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   body,
	}
}

// Status returns the request for the API status endpoint.
func Status() Request {
	return Request{
		Method: http.MethodGet,
		Path:   statusPath,
	}
}

// GetItemMetadata returns the request reading an item's metadata, by handle
// when one is given and by id otherwise.
func GetItemMetadata(ref ItemRef) (Request, error) {
	switch {
	case ref.Handle != "":
		if err := checkHandle(ref.Handle); err != nil {
			return Request{}, err
		}
		return Request{
			Method: http.MethodGet,
			Path:   handlePath + "/" + ref.Handle + "?expand=metadata",
		}, nil
	case ref.ID != "":
		if err := checkItemID(ref.ID); err != nil {
			return Request{}, err
		}
		return Request{
			Method: http.MethodGet,
			Path:   itemsPath + "/" + ref.ID + "/metadata",
		}, nil
	default:
		return Request{}, fmt.Errorf("%w: item handle or id is required", ErrInvalidRequest)
	}
}

// EditItemMetadata returns the request replacing metadata fields of the item
// with the given id. DSpace has no handle-based variant of this endpoint.
//
// entry must be a list of records: a MetadataEntry, or a decoded JSON list of
// objects. It is serialized as given.
func EditItemMetadata(itemID string, entry any) (Request, error) {
	if itemID == "" {
		return Request{}, fmt.Errorf("%w: item id is required", ErrInvalidRequest)
	}
	if err := checkItemID(itemID); err != nil {
		return Request{}, err
	}

	if err := ValidateMetadataEntry(entry); err != nil {
		return Request{}, err
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return Request{}, fmt.Errorf("%w: metadata entry is not JSON serializable: %w",
			ErrInvalidRequest, err)
	}

	return Request{
		Method: http.MethodPut,
		Path:   itemsPath + "/" + itemID + "/metadata",
		Body:   body,
	}, nil
}

// checkItemID rejects ids that would address something other than a single
// path segment under items/.
func checkItemID(id string) error {
	if strings.ContainsAny(id, "/?#") || id == "." || id == ".." {
		return fmt.Errorf("%w: invalid item id %q", ErrInvalidRequest, id)
	}
	return nil
}

// checkHandle is checkItemID for handles, which are prefix/suffix pairs and
// so may contain slashes.
func checkHandle(handle string) error {
	if strings.ContainsAny(handle, "?#") {
		return fmt.Errorf("%w: invalid handle %q", ErrInvalidRequest, handle)
	}
	for _, seg := range strings.Split(handle, "/") {
		if seg == "." || seg == ".." {
			return fmt.Errorf("%w: invalid handle %q", ErrInvalidRequest, handle)
		}
	}
	return nil
}
