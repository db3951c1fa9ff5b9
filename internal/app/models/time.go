package models

import "time"

// TimeModel stamps are UTC at millisecond precision, matching what Mongo
// stores, so a record reads back equal from every storage driver.
type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	now := storedNow()
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = storedNow()
}

func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
