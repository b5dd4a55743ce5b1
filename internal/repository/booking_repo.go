package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64           `gorm:"column:id;primaryKey"`
	UserID     int64           `gorm:"column:user_id;index"`
	RoomID     int64           `gorm:"column:room_id;index"`
	CheckIn    time.Time       `gorm:"column:check_in"`
	CheckOut   *time.Time      `gorm:"column:check_out"`
	Status     string          `gorm:"column:status;size:20"`
	FinalPrice decimal.Decimal `gorm:"column:final_price;type:decimal(10,2)"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		RoomID:     m.RoomID,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		Status:     domain.BookingStatus(m.Status),
		FinalPrice: m.FinalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     string(b.Status),
		FinalPrice: b.FinalPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := conn(ctx, r.db).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByIDForUser loads a booking only when it belongs to userID. Absent and
// foreign bookings both come back as ErrBookingNotFound so the API never
// reveals which one it was.
func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := conn(ctx, r.db).Where("user_id = ?", userID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetActiveByUserAndRoomNumber finds the caller's CHECKED_IN booking for a
// room number. Unknown rooms and rooms without an active stay are the same
// ErrBookingNotFound.
func (r *BookingRepository) GetActiveByUserAndRoomNumber(ctx context.Context, userID int64, roomNumber string) (*domain.Booking, error) {
	var m bookingModel
	tx := conn(ctx, r.db).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.user_id = ? AND rooms.number = ? AND bookings.status = ?",
			userID, roomNumber, string(domain.BookingCheckedIn)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := conn(ctx, r.db).Model(&bookingModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"room_id":     m.RoomID,
			"check_out":   m.CheckOut,
			"status":      m.Status,
			"final_price": m.FinalPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := conn(ctx, r.db).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// CountActiveForRoom reports how many CHECKED_IN bookings reference a room.
// Used to refuse deleting rooms that are currently occupied.
func (r *BookingRepository) CountActiveForRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := conn(ctx, r.db).Model(&bookingModel{}).
		Where("room_id = ? AND status = ?", roomID, string(domain.BookingCheckedIn)).
		Count(&cnt)
	return cnt, tx.Error
}
