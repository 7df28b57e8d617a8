package models

import "time"

// RulesDocument holds the server rules text for one guild.
// One document per guild in the "rules" collection.
type RulesDocument struct {
	GuildID   string    `bson:"guildId" json:"guildId"`
	Content   string    `bson:"content" json:"content"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
