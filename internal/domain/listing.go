package domain

import "time"

// Listing is a rentable property offered by a host.
type Listing struct {
	ID            int64     `json:"id"`
	HostID        int64     `json:"host_id" validate:"required"`
	Title         string    `json:"title" gorm:"size:255" validate:"required"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	Address       string    `json:"address" gorm:"size:255"`
	City          string    `json:"city" gorm:"size:100"`
	Country       string    `json:"country" gorm:"size:100"`
	PricePerNight float64   `json:"price_per_night" gorm:"type:decimal(10,2)" validate:"gte=0"`
	MaxGuests     int       `json:"max_guests" validate:"gte=0"`
	Bedrooms      int       `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int       `json:"bathrooms" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
}

func (l Listing) String() string { return l.Title }
