package models

// WarningRecord is the persisted warning counter for a single user.
// Absence of a record is equivalent to a count of zero; records are never
// deleted, only reset.
type WarningRecord struct {
	UserID    string `bson:"userId" json:"userId"`
	Count     int    `bson:"count" json:"count"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}
