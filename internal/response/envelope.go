package response

import "github.com/MKhiriev/go-rest-kit/models"

// Names of the keys used by [Pagination].
const (
	ListKey = "list"
	MetaKey = "_meta"
)

// Success wraps data into a successful envelope.
func Success(data any) models.Envelope {
	return models.Envelope{
		Status: 0,
		Error:  "",
		Data:   data,
	}
}

// Fail builds a failed envelope. status must be non-zero and err must
// describe the failure. The optional data argument is attached as is;
// without it the envelope carries nil data.
func Fail(status int, err string, data ...any) models.Envelope {
	var payload any
	if len(data) > 0 {
		payload = data[0]
	}

	return models.Envelope{
		Status: status,
		Error:  err,
		Data:   payload,
	}
}

// Pagination wraps an already fetched page into a successful envelope:
//
//	{"status": 0, "error": "", "data": {"list": data, "_meta": PageInfo}}
//
// It is meant for handlers that query pages manually instead of returning a
// collection source to the serializer.
func Pagination(p PageSource, data any) models.Envelope {
	return Success(map[string]any{
		ListKey: data,
		MetaKey: PageInfoFrom(p),
	})
}

// PageInfoFrom converts a page source into wire-level pagination metadata.
// The 0-based page of the source becomes the 1-based CurrentPage.
func PageInfoFrom(p PageSource) models.PageInfo {
	return models.PageInfo{
		TotalCount:  p.TotalCount(),
		PageCount:   p.PageCount(),
		CurrentPage: p.Page() + 1,
		PerPage:     p.PageSize(),
	}
}
