package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/housekeeping/model"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type TurnoverRequest struct {
	RoomID    string
	GuestName string
	TaskDate  time.Time
}

func (t *TurnoverRequest) ToModel(user string) model.Task {
	return model.Task{
		ID:       uuid.NewString(),
		TaskDate: t.TaskDate,
		RoomID:   t.RoomID,
		TaskType: model.TaskTypeFullTurnover,
		Priority: model.PriorityUrgent,
		Status:   model.StatusPending,
		Notes:    fmt.Sprintf("Prepare for guest %s - Check-in at 14:00", t.GuestName),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// TurnoverEvent is the payload published to the housekeeping topic.
type TurnoverEvent struct {
	TaskID   string `json:"task_id"`
	TaskDate string `json:"task_date"`
	RoomID   string `json:"room_id"`
	TaskType string `json:"task_type"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

func (e *TurnoverEvent) FromModel(mod model.Task) {
	e.TaskID = mod.ID
	e.TaskDate = mod.TaskDate.Format(constant.DateOnlyFormat)
	e.RoomID = mod.RoomID
	e.TaskType = mod.TaskType
	e.Priority = mod.Priority
	e.Status = mod.Status
	e.Notes = mod.Notes
}
