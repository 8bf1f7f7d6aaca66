package model

import (
	"database/sql"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "housekeeping_outbox"
	EntityName = "housekeeping_task"

	FieldID           = "id"
	FieldTaskDate     = "task_date"
	FieldRoomID       = "room_id"
	FieldTaskType     = "task_type"
	FieldPriority     = "priority"
	FieldStatus       = "status"
	FieldNotes        = "notes"
	FieldDispatched   = "dispatched"
	FieldDispatchedAt = "dispatched_at"

	TaskTypeFullTurnover = "Full Turnover"
	PriorityUrgent       = "Urgent"
	StatusPending        = "Pending"
)

// Task is an outbox row describing a room turnover. A relay process publishes
// pending rows to the housekeeping topic and flips Dispatched.
type Task struct {
	ID           string       `db:"id"`
	TaskDate     time.Time    `db:"task_date"`
	RoomID       string       `db:"room_id"`
	TaskType     string       `db:"task_type"`
	Priority     string       `db:"priority"`
	Status       string       `db:"status"`
	Notes        string       `db:"notes"`
	Dispatched   bool         `db:"dispatched"`
	DispatchedAt sql.NullTime `db:"dispatched_at"`
	model.Metadata
}
