package model

import (
	"time"

	"github.com/google/uuid"
)

// Institute, Batch and User are read-model replicas fed by the replication subscribers.

type Institute struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Batch struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	InstituteID uint      `json:"instituteId" gorm:"index"`
	Name        string    `json:"name" gorm:"size:255"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	Username    string    `json:"username" gorm:"size:255"`
	Email       string    `json:"email" gorm:"size:255"`
	Role        string    `json:"role" gorm:"size:32"`
	InstituteID *uint     `json:"instituteId" gorm:"index"`
	BatchID     *uint     `json:"batchId" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
