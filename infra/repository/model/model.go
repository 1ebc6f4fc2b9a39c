// Package model holds the GORM table mappings for all three services. Each
// service migrates and touches only its own table; the structs live together
// because the column layout is part of the shared wire vocabulary.
package model

import "time"

// Customer is the customer-service table. The primary key is assigned by the
// database and never reused.
type Customer struct {
	CustomerID int64     `gorm:"column:cust_id;primaryKey;autoIncrement"`
	FirstName  string    `gorm:"column:cust_first_name;size:100;not null"`
	LastName   string    `gorm:"column:cust_last_name;size:100;not null"`
	OtherName  string    `gorm:"column:cust_other_name;size:100"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (Customer) TableName() string { return "customers" }

// Account is the account-service table. The unique index on acc_iban is the
// storage-level backstop for the application's duplicate-IBAN fast-fail.
type Account struct {
	AccountID  int64     `gorm:"column:acc_id;primaryKey;autoIncrement"`
	Iban       string    `gorm:"column:acc_iban;not null;uniqueIndex"`
	BicSwift   string    `gorm:"column:acc_bicswift;not null"`
	CustomerID int64     `gorm:"column:acc_cust_id;not null"`
	CreatedAt  time.Time `gorm:"column:acc_created_at;autoCreateTime"`
}

func (Account) TableName() string { return "accounts" }

// Card is the card-service table. One card per (account, type) pair; PAN is
// globally unique.
type Card struct {
	CardID    int64     `gorm:"column:card_id;primaryKey;autoIncrement"`
	AccountID int64     `gorm:"column:card_acc_id;not null;uniqueIndex:idx_card_account_type"`
	CardType  string    `gorm:"column:card_type;not null;uniqueIndex:idx_card_account_type"`
	Pan       string    `gorm:"column:card_pan_code;not null;uniqueIndex"`
	Cvv       string    `gorm:"column:card_cvv_number;not null"`
	CardAlias string    `gorm:"column:card_alias"`
	CreatedAt time.Time `gorm:"column:card_created_at;autoCreateTime"`
}

func (Card) TableName() string { return "bank_cards" }
