package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Faq struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	Question   string    `json:"question" gorm:"size:1000;not null"`
	QuestionAr string    `json:"questionAr" gorm:"size:1000"`
	Answer     string    `json:"answer" gorm:"size:2000;not null"`
	AnswerAr   string    `json:"answerAr" gorm:"size:2000"`
	InApp      bool      `json:"inApp" gorm:"default:true"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}

func (f *Faq) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
