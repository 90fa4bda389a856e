package sqlstore

import (
	"time"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Los importes se guardan como texto para no pasar por REAL y perder precisión.

type userRecord struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func newUserRecord(u *entity.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

type designRecord struct {
	ID           string          `gorm:"primaryKey"`
	Code         string          `gorm:"uniqueIndex;not null"`
	CostPrice    decimal.Decimal `gorm:"type:text;not null"`
	SellingPrice decimal.Decimal `gorm:"type:text;not null"`
	Notes        string
	Image        string
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (designRecord) TableName() string { return "designs" }

func (r *designRecord) toEntity() *entity.Design {
	return &entity.Design{
		ID:           r.ID,
		Code:         r.Code,
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Notes:        r.Notes,
		Image:        r.Image,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

func newDesignRecord(d *entity.Design) *designRecord {
	return &designRecord{
		ID:           d.ID,
		Code:         d.Code,
		CostPrice:    d.CostPrice,
		SellingPrice: d.SellingPrice,
		Notes:        d.Notes,
		Image:        d.Image,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type orderRecord struct {
	ID               string `gorm:"primaryKey"`
	CustomerName     string `gorm:"not null"`
	Phone            string
	AbayaCode        string `gorm:"index"`
	Length           string
	Width            string
	SleeveLength     string
	DeliveryLocation string
	Price            decimal.Decimal `gorm:"type:text;not null"`
	Deposit          decimal.Decimal `gorm:"type:text;not null"`
	Notes            string
	IsDelivered      bool   `gorm:"default:false"`
	Status           string `gorm:"not null;default:New"`
	CreatedAt        time.Time `gorm:"index"`
}

func (orderRecord) TableName() string { return "orders" }

func (r *orderRecord) toEntity() *entity.Order {
	return &entity.Order{
		ID:               r.ID,
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		AbayaCode:        r.AbayaCode,
		Length:           r.Length,
		Width:            r.Width,
		SleeveLength:     r.SleeveLength,
		DeliveryLocation: r.DeliveryLocation,
		Price:            r.Price,
		Deposit:          r.Deposit,
		Notes:            r.Notes,
		IsDelivered:      r.IsDelivered,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt.UTC(),
	}
}

func newOrderRecord(o *entity.Order) *orderRecord {
	return &orderRecord{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		AbayaCode:        o.AbayaCode,
		Length:           o.Length,
		Width:            o.Width,
		SleeveLength:     o.SleeveLength,
		DeliveryLocation: o.DeliveryLocation,
		Price:            o.Price,
		Deposit:          o.Deposit,
		Notes:            o.Notes,
		IsDelivered:      o.IsDelivered,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt.UTC(),
	}
}
