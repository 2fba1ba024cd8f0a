package models

// InsertResult is returned by every create route.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult is returned by the update and upsert routes. UpsertedID is
// null unless the write inserted a new document.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}
