package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Number      string          `gorm:"column:number;size:10;uniqueIndex"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	IsAvailable bool            `gorm:"column:is_available"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		Number:      m.Number,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:          r.ID,
		Number:      r.Number,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := conn(ctx, r.db).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return domain.ErrRoomNumberTaken
		}
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := conn(ctx, r.db).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := conn(ctx, r.db).Where("number = ?", number).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	return r.list(ctx, conn(ctx, r.db))
}

func (r *RoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return r.list(ctx, conn(ctx, r.db).Where("is_available = ?", true))
}

func (r *RoomRepository) list(ctx context.Context, q *gorm.DB) ([]domain.Room, error) {
	var models []roomModel
	if err := q.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := conn(ctx, r.db).Model(&roomModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"number":       m.Number,
			"price":        m.Price,
			"is_available": m.IsAvailable,
		})
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return domain.ErrRoomNumberTaken
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := conn(ctx, r.db).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// Reserve flips is_available to false, but only if it is currently true.
// The conditional UPDATE is the compare-and-swap that serializes concurrent
// check-ins on one room: the loser sees zero affected rows and gets
// ErrRoomNotAvailable with no state change.
func (r *RoomRepository) Reserve(ctx context.Context, roomID int64) error {
	tx := conn(ctx, r.db).Model(&roomModel{}).
		Where("id = ? AND is_available = ?", roomID, true).
		Update("is_available", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRoomNotAvailable
	}
	return nil
}

// Release marks the room available again. Idempotent: releasing an already
// available room is a no-op.
func (r *RoomRepository) Release(ctx context.Context, roomID int64) error {
	return conn(ctx, r.db).Model(&roomModel{}).
		Where("id = ?", roomID).
		Update("is_available", true).Error
}
