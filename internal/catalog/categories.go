package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
)

const (
	maxCategoryTitleLen = 45
	maxCategoryDescLen  = 255
)

// CategoryCreate carries the caller input for a new category.
type CategoryCreate struct {
	BusinessID  int64
	Title       string
	Description string
	Pic         string
	Status      *int
	TagIDs      []int64
}

// CategoryUpdate mirrors ProductUpdate: nil pointers leave fields unchanged,
// ImageOnly restricts the write to Pic and keeps the tag set intact.
type CategoryUpdate struct {
	ID          int64
	Title       *string
	Description *string
	Pic         *string
	Status      *int
	TagIDs      []int64
	ImageOnly   bool
}

// ListCategories returns every category of a business, newest first, with
// resolved tag sets.
func (s *Service) ListCategories(ctx context.Context, businessID int64) ([]domain.CategoryWithTags, error) {
	if businessID <= 0 {
		return nil, errValidation("Missing businessId")
	}
	tx := s.db.WithContext(ctx)
	var categories []domain.Category
	err := tx.Where(`"BUSINESS_ID" = ?`, businessID).
		Order(`"BUSINESS_PRODUCT_CATEGORY_ID" DESC`).
		Find(&categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return s.resolveCategoryTags(tx, categories)
}

// CreateCategory inserts a category and its tag links as one transaction.
// STATUS defaults to 1 when the caller does not supply one.
func (s *Service) CreateCategory(ctx context.Context, in CategoryCreate) (*domain.CategoryWithTags, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.BusinessID <= 0 || in.Title == "" {
		return nil, errValidation("Missing required fields")
	}
	if err := checkLengths(in.Title, in.Description, in.Pic, maxCategoryTitleLen, maxCategoryDescLen); err != nil {
		return nil, err
	}
	status := 1
	if in.Status != nil {
		if *in.Status != 0 && *in.Status != 1 {
			return nil, errValidation("Invalid status")
		}
		status = *in.Status
	}

	var out domain.CategoryWithTags
	err := s.inTx("create category", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		cat := domain.Category{
			BusinessID:  in.BusinessID,
			Title:       in.Title,
			Description: in.Description,
			Pic:         in.Pic,
			Status:      status,
		}
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}
		if err := insertCategoryTags(tx, cat.ID, in.TagIDs); err != nil {
			return err
		}
		resolved, err := s.resolveCategoryTags(tx, []domain.Category{cat})
		if err != nil {
			return err
		}
		out = resolved[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish("category", "create", out.ID, out.BusinessID)
	return &out, nil
}

// UpdateCategory applies a full or image-only update; a full update replaces
// the tag set with TagIDs, empty meaning "clear".
func (s *Service) UpdateCategory(ctx context.Context, in CategoryUpdate) (*domain.CategoryWithTags, error) {
	if in.ID <= 0 {
		return nil, errValidation("Missing category id")
	}
	if !in.ImageOnly {
		title, desc := "", ""
		if in.Title != nil {
			title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			desc = *in.Description
		}
		if err := checkLengths(title, desc, "", maxCategoryTitleLen, maxCategoryDescLen); err != nil {
			return nil, err
		}
	}

	var out domain.CategoryWithTags
	err := s.inTx("update category", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var cat domain.Category
		if err := tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, in.ID).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", ID: in.ID}
			}
			return err
		}

		if in.ImageOnly {
			if in.Pic != nil {
				cat.Pic = *in.Pic
				if err := tx.Model(&cat).Update("PIC", cat.Pic).Error; err != nil {
					return err
				}
			}
		} else {
			if in.Title != nil {
				cat.Title = strings.TrimSpace(*in.Title)
			}
			if in.Description != nil {
				cat.Description = *in.Description
			}
			if in.Pic != nil {
				cat.Pic = *in.Pic
			}
			if in.Status != nil {
				if *in.Status != 0 && *in.Status != 1 {
					return errValidation("Invalid status")
				}
				cat.Status = *in.Status
			}
			if err := tx.Save(&cat).Error; err != nil {
				return err
			}
			if err := tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, cat.ID).Delete(&domain.CategoryTag{}).Error; err != nil {
				return err
			}
			if err := insertCategoryTags(tx, cat.ID, in.TagIDs); err != nil {
				return err
			}
		}

		resolved, err := s.resolveCategoryTags(tx, []domain.Category{cat})
		if err != nil {
			return err
		}
		out = resolved[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish("category", "update", out.ID, out.BusinessID)
	return &out, nil
}

// DeleteCategory removes the category's tag links and the category row as
// one transaction. Products referencing the category keep their rows; the
// reference is detached.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return errValidation("Missing category id")
	}
	var businessID int64
	err := s.inTx("delete category", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var cat domain.Category
		if err := tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, id).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", ID: id}
			}
			return err
		}
		businessID = cat.BusinessID
		if err := tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, id).Delete(&domain.CategoryTag{}).Error; err != nil {
			return err
		}
		err := tx.Model(&domain.Product{}).
			Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, id).
			Update("BUSINESS_PRODUCT_CATEGORY_ID", nil).Error
		if err != nil {
			return err
		}
		return tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ?`, id).Delete(&domain.Category{}).Error
	})
	if err != nil {
		return err
	}
	s.publish("category", "delete", id, businessID)
	return nil
}

func insertCategoryTags(tx *gorm.DB, categoryID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]domain.CategoryTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, domain.CategoryTag{
			CategoryID: categoryID,
			TagID:      tagID,
			CreatedAt:  now,
		})
	}
	return tx.Create(&rows).Error
}
