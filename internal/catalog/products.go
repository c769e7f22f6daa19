package catalog

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
)

const (
	maxProductTitleLen = 100
	maxProductDescLen  = 1000
	maxPicLen          = 255
)

// ProductCreate carries the caller input for a new product.
type ProductCreate struct {
	BusinessID  int64
	Title       string
	Description string
	Price       *float64
	Pic         string
	CategoryID  *int64
	TagIDs      []int64
}

// ProductUpdate carries a product update. Nil field pointers mean "leave
// unchanged". When ImageOnly is set only Pic is written and the tag set is
// not touched; otherwise the tag set is fully replaced by TagIDs.
type ProductUpdate struct {
	ID          int64
	Title       *string
	Description *string
	Price       *float64
	Pic         *string
	CategoryID  *int64
	Status      *int
	TagIDs      []int64
	ImageOnly   bool
}

// ListProducts returns every product of a business, newest first, each with
// its resolved tag set. activeOnly narrows to STATUS=1 rows.
func (s *Service) ListProducts(ctx context.Context, businessID int64, activeOnly bool) ([]domain.ProductWithTags, error) {
	if businessID <= 0 {
		return nil, errValidation("Missing businessId")
	}
	tx := s.db.WithContext(ctx)
	q := tx.Where(`"BUSINESS_ID" = ?`, businessID)
	if activeOnly {
		q = q.Where(`"STATUS" = ?`, 1)
	}
	var products []domain.Product
	if err := q.Order(`"BUSINESS_PRODUCT_ID" DESC`).Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return s.resolveProductTags(tx, products)
}

// CreateProduct inserts a product and its tag links as one transaction.
func (s *Service) CreateProduct(ctx context.Context, in ProductCreate) (*domain.ProductWithTags, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.BusinessID <= 0 || in.Title == "" || in.Price == nil {
		return nil, errValidation("Missing required fields")
	}
	if *in.Price < 0 {
		return nil, errValidation("Invalid product_price")
	}
	if err := checkLengths(in.Title, in.Description, in.Pic, maxProductTitleLen, maxProductDescLen); err != nil {
		return nil, err
	}

	var out domain.ProductWithTags
	err := s.inTx("create product", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if in.CategoryID != nil {
			if err := checkCategoryRef(tx, *in.CategoryID, in.BusinessID); err != nil {
				return err
			}
		}
		p := domain.Product{
			BusinessID:  in.BusinessID,
			Title:       in.Title,
			Description: in.Description,
			Price:       *in.Price,
			Pic:         in.Pic,
			CategoryID:  in.CategoryID,
			Status:      1,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if err := insertProductTags(tx, p.ID, in.TagIDs); err != nil {
			return err
		}
		resolved, err := s.resolveProductTags(tx, []domain.Product{p})
		if err != nil {
			return err
		}
		out = resolved[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish("product", "create", out.ID, out.BusinessID)
	return &out, nil
}

// UpdateProduct applies a full or image-only update. A full update replaces
// the product's entire tag set with TagIDs; an empty set clears all tags.
func (s *Service) UpdateProduct(ctx context.Context, in ProductUpdate) (*domain.ProductWithTags, error) {
	if in.ID <= 0 {
		return nil, errValidation("Missing product id")
	}
	if in.Pic != nil && utf8.RuneCountInString(*in.Pic) > maxPicLen {
		return nil, errValidation("Image URL too long")
	}
	if !in.ImageOnly {
		title, desc := "", ""
		if in.Title != nil {
			title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			desc = *in.Description
		}
		if err := checkLengths(title, desc, "", maxProductTitleLen, maxProductDescLen); err != nil {
			return nil, err
		}
		if in.Price != nil && *in.Price < 0 {
			return nil, errValidation("Invalid product_price")
		}
	}

	var out domain.ProductWithTags
	err := s.inTx("update product", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var p domain.Product
		if err := tx.Where(`"BUSINESS_PRODUCT_ID" = ?`, in.ID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "product", ID: in.ID}
			}
			return err
		}

		if in.ImageOnly {
			if in.Pic != nil {
				p.Pic = *in.Pic
				if err := tx.Model(&p).Update("PIC", p.Pic).Error; err != nil {
					return err
				}
			}
		} else {
			if in.Title != nil {
				p.Title = strings.TrimSpace(*in.Title)
			}
			if in.Description != nil {
				p.Description = *in.Description
			}
			if in.Price != nil {
				p.Price = *in.Price
			}
			if in.Pic != nil {
				p.Pic = *in.Pic
			}
			if in.Status != nil {
				if *in.Status != 0 && *in.Status != 1 {
					return errValidation("Invalid status")
				}
				p.Status = *in.Status
			}
			if in.CategoryID != nil {
				if err := checkCategoryRef(tx, *in.CategoryID, p.BusinessID); err != nil {
					return err
				}
				p.CategoryID = in.CategoryID
			}
			if err := tx.Save(&p).Error; err != nil {
				return err
			}
			if err := tx.Where(`"BUSINESS_PRODUCT_ID" = ?`, p.ID).Delete(&domain.ProductTag{}).Error; err != nil {
				return err
			}
			if err := insertProductTags(tx, p.ID, in.TagIDs); err != nil {
				return err
			}
		}

		resolved, err := s.resolveProductTags(tx, []domain.Product{p})
		if err != nil {
			return err
		}
		out = resolved[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish("product", "update", out.ID, out.BusinessID)
	return &out, nil
}

// DeleteProduct removes the product's tag links and the product row as one
// transaction; no dangling join rows may survive.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return errValidation("Missing product id")
	}
	var businessID int64
	err := s.inTx("delete product", s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var p domain.Product
		if err := tx.Where(`"BUSINESS_PRODUCT_ID" = ?`, id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "product", ID: id}
			}
			return err
		}
		businessID = p.BusinessID
		if err := tx.Where(`"BUSINESS_PRODUCT_ID" = ?`, id).Delete(&domain.ProductTag{}).Error; err != nil {
			return err
		}
		return tx.Where(`"BUSINESS_PRODUCT_ID" = ?`, id).Delete(&domain.Product{}).Error
	})
	if err != nil {
		return err
	}
	s.publish("product", "delete", id, businessID)
	return nil
}

func insertProductTags(tx *gorm.DB, productID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]domain.ProductTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, domain.ProductTag{
			ProductID: productID,
			TagID:     tagID,
			CreatedAt: now,
		})
	}
	return tx.Create(&rows).Error
}

// checkCategoryRef ensures a product's category reference points to an
// existing category of the same business.
func checkCategoryRef(tx *gorm.DB, categoryID, businessID int64) error {
	var count int64
	err := tx.Model(&domain.Category{}).
		Where(`"BUSINESS_PRODUCT_CATEGORY_ID" = ? AND "BUSINESS_ID" = ?`, categoryID, businessID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errValidation("Invalid categoryId")
	}
	return nil
}

func checkLengths(title, desc, pic string, maxTitle, maxDesc int) error {
	if utf8.RuneCountInString(title) > maxTitle {
		return errValidation("Title too long")
	}
	if utf8.RuneCountInString(desc) > maxDesc {
		return errValidation("Description too long")
	}
	if utf8.RuneCountInString(pic) > maxPicLen {
		return errValidation("Image URL too long")
	}
	return nil
}
