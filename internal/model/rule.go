package model

// Rule maps a university keyword to a contract cycle length in months.
// Keywords are stored uppercase and matched case-insensitively against
// intern university names at read time; there is no foreign key.
type Rule struct {
	Model
	Keyword string `gorm:"type:varchar(120);uniqueIndex;not null" json:"keyword" excel:"keyword"`
	Months  int    `gorm:"not null" json:"months" excel:"meses"`
}
