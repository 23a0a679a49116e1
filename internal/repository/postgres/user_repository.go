package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

const profileHistoryLimit = 200

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, errors.New("user not found")
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, errors.New("user not found")
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	var existingUser domain.User
	if err := r.DB.WithContext(ctx).First(&existingUser, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return err
	}

	user.UpdatedAt = time.Now()

	if err := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).
		Select("full_name", "email", "password", "role", "preferred_categories", "price_range_min", "price_range_max", "updated_at").
		Updates(user).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) UpdateEmailVerification(ctx context.Context, id uint, isVerified bool) error {
	result := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("is_verified", isVerified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *UserRepository) CreateInteraction(ctx context.Context, interaction *domain.UserInteraction) error {
	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) FindInteractions(ctx context.Context, userID uint, eventType string, limit int) ([]domain.UserInteraction, error) {
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var interactions []domain.UserInteraction
	err := query.Order("created_at DESC").Limit(limit).Find(&interactions).Error
	if err != nil {
		return nil, err
	}

	return interactions, nil
}

// GetProfile assembles the personalization snapshot: stated preferences from
// the user row plus recent purchase and browse history.
func (r *UserRepository) GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	interactions, err := r.FindInteractions(ctx, userID, "", profileHistoryLimit)
	if err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		UserID:              user.ID,
		PreferredCategories: user.PreferredCategories,
		PriceRangeMin:       user.PriceRangeMin,
		PriceRangeMax:       user.PriceRangeMax,
	}

	for _, interaction := range interactions {
		switch interaction.EventType {
		case domain.InteractionPurchase:
			profile.PurchaseEvents = append(profile.PurchaseEvents, domain.PurchaseEvent{
				ProductCategory: interaction.ProductCategory,
				Timestamp:       interaction.CreatedAt,
			})
		case domain.InteractionBrowse:
			profile.BrowseEvents = append(profile.BrowseEvents, domain.BrowseEvent{
				ProductCategory: interaction.ProductCategory,
				Timestamp:       interaction.CreatedAt,
				DurationSeconds: interaction.DurationSeconds,
			})
		}
	}

	return profile, nil
}
