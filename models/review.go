package models

type Review struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Model    string `gorm:"index:idx_review_user_model,unique;not null" json:"model"`
	Username string `gorm:"index:idx_review_user_model,unique;not null" json:"user"`
	Score    int    `gorm:"not null" json:"score"`
	Date     string `json:"date"` // YYYY-MM-DD
	Comment  string `json:"comment"`
}
