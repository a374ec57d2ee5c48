// Package dspace is a client for the DSpace 5.x REST API.
//
// # Overview
//
// Every operation goes through the same pipeline:
//
//	Request (method, path, body)
//	    │  ComposeHeaders(token, content type)
//	    ▼
//	Dispatcher.Dispatch ──► HTTP ──► Response (status, headers, body, final URL)
//	    │
//	    ▼
//	Decode(response, content type) ──► Payload (LoginToken | Structured | Tree)
//
// Request values are built by pure functions (Connect, Status,
// GetItemMetadata, EditItemMetadata) and carry no transport state. A Client
// logs in when it is created and attaches the session token to every request
// it sends afterwards.
//
// # Usage
//
//	client, err := dspace.New(ctx, dspace.Config{
//	  BaseURL:  "https://demo.dspace.org/rest",
//	  Username: "admin@example.com",
//	  Password: os.Getenv("DSPACE_PASSWORD"),
//	})
//	if err != nil {
//	  return err
//	}
//
//	req, err := dspace.GetItemMetadata(dspace.ItemRef{Handle: "123456789/1"})
//	if err != nil {
//	  return err
//	}
//	payload, err := client.Send(ctx, req)
//	if err != nil {
//	  return err
//	}
//	md, err := dspace.Metadata(payload)
//	if err != nil {
//	  return err
//	}
//	titles := dspace.MetadataValues(md, "dc.title")
//
// # Endpoints
//
// Relative to the base URL:
//   - POST login (body {"email", "password"}, replies with the token as plain text)
//   - GET  status
//   - GET  handle/:handle?expand=metadata
//   - GET  items/:id/metadata
//   - PUT  items/:id/metadata
//
// # Headers
//
// Every request carries rest-dspace-token, Accept, Accept-Charset: UTF-8 and
// Content-Type. Before login the token header holds the literal "null".
//
// # Error Handling
//
// Nothing is retried. Errors from net/http are returned as is; a non-2xx
// status becomes a *StatusError and an unparsable body a *DecodeError. A 2xx
// reply without a body, such as the one to a metadata write, decodes to an
// empty Structured payload.
// Configuration and request validation failures match ErrInvalidConfig and
// ErrInvalidRequest and are raised before any network activity.
package dspace
