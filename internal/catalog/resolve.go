package catalog

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
)

// The batch tag resolution used by product and category reads: collect the
// parent ids, fetch every join row for that set, fetch the distinct tags
// those rows reference, then attach each parent's subset in memory. One
// query per table instead of one per parent. Tag order within a parent is
// whatever the tag fetch returned.

func fetchTagsByIDs(tx *gorm.DB, tagIDs []int64) (map[int64]domain.Tag, error) {
	byID := make(map[int64]domain.Tag, len(tagIDs))
	if len(tagIDs) == 0 {
		return byID, nil
	}
	var tags []domain.Tag
	if err := tx.Where(`"BUSINESS_PRODUCT_TAG_ID" IN ?`, tagIDs).Find(&tags).Error; err != nil {
		return nil, errors.Wrap(err, "fetch tags")
	}
	for _, t := range tags {
		byID[t.ID] = t
	}
	return byID, nil
}

func (s *Service) resolveProductTags(tx *gorm.DB, products []domain.Product) ([]domain.ProductWithTags, error) {
	out := make([]domain.ProductWithTags, 0, len(products))
	if len(products) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	var joins []domain.ProductTag
	if err := tx.Where(`"BUSINESS_PRODUCT_ID" IN ?`, ids).Find(&joins).Error; err != nil {
		return nil, errors.Wrap(err, "fetch product tag links")
	}

	tagIDs := distinctTagIDs(len(joins), func(i int) int64 { return joins[i].TagID })
	byID, err := fetchTagsByIDs(tx, tagIDs)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int64][]domain.Tag, len(products))
	for _, j := range joins {
		if t, found := byID[j.TagID]; found {
			byProduct[j.ProductID] = append(byProduct[j.ProductID], t)
		}
	}

	for _, p := range products {
		tags := byProduct[p.ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		out = append(out, domain.ProductWithTags{Product: p, Tags: tags})
	}
	return out, nil
}

func (s *Service) resolveCategoryTags(tx *gorm.DB, categories []domain.Category) ([]domain.CategoryWithTags, error) {
	out := make([]domain.CategoryWithTags, 0, len(categories))
	if len(categories) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	var joins []domain.CategoryTag
	if err := tx.Where(`"BUSINESS_PRODUCT_CATEGORY_ID" IN ?`, ids).Find(&joins).Error; err != nil {
		return nil, errors.Wrap(err, "fetch category tag links")
	}

	tagIDs := distinctTagIDs(len(joins), func(i int) int64 { return joins[i].TagID })
	byID, err := fetchTagsByIDs(tx, tagIDs)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]domain.Tag, len(categories))
	for _, j := range joins {
		if t, found := byID[j.TagID]; found {
			byCategory[j.CategoryID] = append(byCategory[j.CategoryID], t)
		}
	}

	for _, c := range categories {
		tags := byCategory[c.ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		out = append(out, domain.CategoryWithTags{Category: c, Tags: tags})
	}
	return out, nil
}

func distinctTagIDs(n int, at func(i int) int64) []int64 {
	seen := make(map[int64]struct{}, n)
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id := at(i)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
