package events

// Topics for catalog change events published on the in-process bus.
const (
	TopicAuthorChanged = "catalog.author.changed"
	TopicBookChanged   = "catalog.book.changed"
)

// Actions carried in a ChangeEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent is emitted after a unit of work has committed a mutation.
// Rows is the affected-row count the commit reported.
type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	Id     uint   `json:"id"`
	Rows   int64  `json:"rows"`
}
