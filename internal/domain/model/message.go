package model

import "time"

// チャットの1件。追記専用で編集・削除は無い。
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FromUser  string    `gorm:"type:varchar(255);not null;column:from_user" json:"from_user"`
	ToUser    string    `gorm:"type:varchar(255);column:to_user" json:"to_user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
