package property

import "time"

// Owner is the property manager who receives notifications about their own portfolio.
type Owner struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255"`
	Currency  string `gorm:"size:3"` // ISO 4217 code, e.g. USD
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Apartment is a rentable unit belonging to an owner.
type Apartment struct {
	ID         int64  `gorm:"primaryKey"`
	OwnerID    *int64 `gorm:"index"`
	Owner      *Owner `gorm:"foreignKey:OwnerID"`
	Name       string `gorm:"size:255;not null"`
	UnitNumber string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
