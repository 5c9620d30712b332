package response

// Collection is an in-memory paged collection source. Items holds the
// models of the current page; ItemKeys optionally names them (used when the
// serializer preserves keys). Pager is nil when pagination is disabled.
type Collection struct {
	Items    []any
	ItemKeys []string
	Pager    PageSource
}

// NewCollection wraps a page of typed models.
func NewCollection[T any](items []T, pager PageSource) *Collection {
	models := make([]any, len(items))
	for i, item := range items {
		models[i] = item
	}

	return &Collection{Items: models, Pager: pager}
}

// Models returns the models of the current page.
func (c *Collection) Models() []any {
	return c.Items
}

// Keys returns the keys of the models. A nil result means positional keys.
func (c *Collection) Keys() []string {
	return c.ItemKeys
}

// Pagination returns the page source and whether pagination is enabled.
func (c *Collection) Pagination() (PageSource, bool) {
	return c.Pager, c.Pager != nil
}
