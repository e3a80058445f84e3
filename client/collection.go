package client

// Collection is a reference to a named collection on the server. It holds
// the name and a share of the client's transport for delegation to
// collection-level operations; it caches no server state, and discarding it
// has no server-side effect.
type Collection struct {
	name    string
	service collectionService
}

// Name returns the collection name the handle is bound to.
func (c *Collection) Name() string {
	return c.name
}
