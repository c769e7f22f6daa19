package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
)

// ListTags returns every tag of a business, newest first.
func (s *Service) ListTags(ctx context.Context, businessID int64) ([]domain.Tag, error) {
	if businessID <= 0 {
		return nil, errValidation("Missing businessId")
	}
	var tags []domain.Tag
	err := s.db.WithContext(ctx).
		Where(`"BUSINESS_ID" = ?`, businessID).
		Order(`"BUSINESS_PRODUCT_TAG_ID" DESC`).
		Find(&tags).Error
	if err != nil {
		return nil, errors.Wrap(err, "list tags")
	}
	return tags, nil
}

// CreateTag inserts one tag row.
func (s *Service) CreateTag(ctx context.Context, businessID int64, title string) (*domain.Tag, error) {
	title = strings.TrimSpace(title)
	if businessID <= 0 || title == "" {
		return nil, errValidation("Missing required fields")
	}
	tag := domain.Tag{BusinessID: businessID, Title: title}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, errors.Wrap(err, "create tag")
	}
	s.publish("tag", "create", tag.ID, tag.BusinessID)
	return &tag, nil
}

// UpdateTag replaces the tag title only.
func (s *Service) UpdateTag(ctx context.Context, id int64, title string) (*domain.Tag, error) {
	if id <= 0 {
		return nil, errValidation("Missing tag id")
	}
	var tag domain.Tag
	tx := s.db.WithContext(ctx)
	if err := tx.Where(`"BUSINESS_PRODUCT_TAG_ID" = ?`, id).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "tag", ID: id}
		}
		return nil, errors.Wrap(err, "query tag")
	}
	tag.Title = strings.TrimSpace(title)
	if err := tx.Model(&tag).Update("TITLE", tag.Title).Error; err != nil {
		return nil, errors.Wrap(err, "update tag")
	}
	s.publish("tag", "update", tag.ID, tag.BusinessID)
	return &tag, nil
}

// DeleteTag removes every product and category link referencing the tag and
// the tag row itself as one transaction. A tag attached to many parents must
// not leave a single orphaned join row behind.
func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	if id <= 0 {
		return errValidation("Missing tag id")
	}
	var businessID int64
	err := s.inTx("delete tag", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var tag domain.Tag
		if err := tx.Where(`"BUSINESS_PRODUCT_TAG_ID" = ?`, id).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "tag", ID: id}
			}
			return err
		}
		businessID = tag.BusinessID
		if err := tx.Where(`"BUSINESS_PRODUCT_TAG_ID" = ?`, id).Delete(&domain.ProductTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where(`"BUSINESS_PRODUCT_TAG_ID" = ?`, id).Delete(&domain.CategoryTag{}).Error; err != nil {
			return err
		}
		return tx.Where(`"BUSINESS_PRODUCT_TAG_ID" = ?`, id).Delete(&domain.Tag{}).Error
	})
	if err != nil {
		return err
	}
	s.publish("tag", "delete", id, businessID)
	return nil
}
