package model

import "time"

// BranchModel merepresentasikan tabel branches
type BranchModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:120;not null;uniqueIndex:uq_branches_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BranchModel) TableName() string { return "branches" }
