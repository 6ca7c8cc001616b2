package db

import (
	"time"
)

type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (CategoryModel) TableName() string { return "categories" }

type UserModel struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string `gorm:"not null"`
	Lastname   string `gorm:"not null"`
	Username   string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	CategoryID uint   `gorm:"not null"`

	Category CategoryModel `gorm:"foreignKey:CategoryID"`
}

func (UserModel) TableName() string { return "users" }

type MemoModel struct {
	ID                uint `gorm:"primaryKey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Title             string  `gorm:"not null"`
	MemoNumber        string  `gorm:"uniqueIndex;not null"`
	ExpiryDate        string  `gorm:"not null"`
	WholesalerDetails string  `gorm:"type:text;not null"`
	BuyerDetails      string  `gorm:"type:text;not null"`
	Items             string  `gorm:"type:text;not null"`
	TotalValue        float64 `gorm:"not null"`
	Remarks           string  `gorm:"type:text"`
	Company           string  `gorm:"index;not null"`
	UserID            uint    `gorm:"index;not null"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MemoModel) TableName() string { return "memos" }

type InvoiceModel struct {
	ID                uint `gorm:"primaryKey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Title             string  `gorm:"not null"`
	InvoiceNumber     string  `gorm:"uniqueIndex;not null"`
	WholesalerDetails string  `gorm:"type:text;not null"`
	BuyerDetails      string  `gorm:"type:text;not null"`
	Items             string  `gorm:"type:text;not null"`
	TotalValue        float64 `gorm:"not null"`
	Company           string  `gorm:"index;not null"`
	UserID            uint    `gorm:"index;not null"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (InvoiceModel) TableName() string { return "invoices" }
