package service

import (
	"errors"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryCycle    = errors.New("category cannot be its own ancestor")
	ErrCategoryInUse    = errors.New("category has products and cannot be deleted")
)

type CategoryService interface {
	ListTree() ([]model.CategoryNode, error)
	GetTree(id uint) (*model.CategoryNode, error)
	GetBySlug(slug string) (*model.Category, error)
	Create(name, image string, parentID *uint, showOnHome bool) (*model.Category, error)
	Update(id uint, name, image *string, parentID *uint, clearParent bool, showOnHome *bool) (*model.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// buildNode serializes a category and, recursively, every descendant. The
// children index is built once from a single FindAll so the tree costs one
// query no matter how deep it goes.
func buildNode(category *model.Category, childrenByParent map[uint][]*model.Category) model.CategoryNode {
	node := model.CategoryNode{
		ID:            category.ID,
		Name:          category.Name,
		Slug:          category.Slug,
		Image:         category.Image,
		Parent:        category.ParentID,
		ShowOnHome:    category.ShowOnHome,
		Subcategories: []model.CategoryNode{},
	}
	for _, child := range childrenByParent[category.ID] {
		node.Subcategories = append(node.Subcategories, buildNode(child, childrenByParent))
	}
	return node
}

func indexByParent(categories []model.Category) map[uint][]*model.Category {
	childrenByParent := make(map[uint][]*model.Category)
	for i := range categories {
		category := &categories[i]
		if category.ParentID != nil {
			childrenByParent[*category.ParentID] = append(childrenByParent[*category.ParentID], category)
		}
	}
	return childrenByParent
}

func (s *categoryService) ListTree() ([]model.CategoryNode, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load category tree", err, nil)
		return nil, err
	}

	childrenByParent := indexByParent(categories)

	tree := []model.CategoryNode{}
	for i := range categories {
		if categories[i].ParentID == nil {
			tree = append(tree, buildNode(&categories[i], childrenByParent))
		}
	}
	return tree, nil
}

func (s *categoryService) GetTree(id uint) (*model.CategoryNode, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load category tree", err, nil)
		return nil, err
	}

	childrenByParent := indexByParent(categories)
	for i := range categories {
		if categories[i].ID == id {
			node := buildNode(&categories[i], childrenByParent)
			return &node, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (s *categoryService) GetBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to fetch category by slug", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(name, image string, parentID *uint, showOnHome bool) (*model.Category, error) {
	logger.Info("Creating category", map[string]interface{}{
		"name":      name,
		"parent_id": parentID,
	})

	if parentID != nil {
		if _, err := s.categoryRepo.FindByID(*parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	category := &model.Category{
		Name:       name,
		Slug:       util.Slugify(name),
		Image:      image,
		ParentID:   parentID,
		ShowOnHome: showOnHome,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, nil
}

// wouldCycle walks up from candidate parent to the root and reports whether
// the category itself appears on the path.
func wouldCycle(categoryID uint, parentID uint, byID map[uint]*model.Category) bool {
	seen := make(map[uint]bool)
	current := parentID
	for {
		if current == categoryID {
			return true
		}
		if seen[current] {
			// pre-existing loop in the data, refuse to extend it
			return true
		}
		seen[current] = true

		parent, ok := byID[current]
		if !ok || parent.ParentID == nil {
			return false
		}
		current = *parent.ParentID
	}
}

func (s *categoryService) Update(id uint, name, image *string, parentID *uint, clearParent bool, showOnHome *bool) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to fetch category for update", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	if parentID != nil {
		if *parentID == id {
			return nil, ErrCategoryCycle
		}

		categories, err := s.categoryRepo.FindAll()
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]*model.Category, len(categories))
		for i := range categories {
			byID[categories[i].ID] = &categories[i]
		}
		if _, ok := byID[*parentID]; !ok {
			return nil, ErrCategoryNotFound
		}
		if wouldCycle(id, *parentID, byID) {
			logger.Warn("Category update rejected: would create a cycle", map[string]interface{}{
				"category_id": id,
				"parent_id":   *parentID,
			})
			return nil, ErrCategoryCycle
		}
		category.ParentID = parentID
	} else if clearParent {
		category.ParentID = nil
	}

	// Renames never touch the slug, so stored links stay valid.
	if name != nil {
		category.Name = *name
	}
	if image != nil {
		category.Image = *image
	}
	if showOnHome != nil {
		category.ShowOnHome = *showOnHome
	}

	if err := s.categoryRepo.Update(category); err != nil {
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	logger.Info("Category updated", map[string]interface{}{
		"category_id": category.ID,
	})
	return category, nil
}

// Delete removes a category and its whole subtree, unless any product still
// references a category in that subtree.
func (s *categoryService) Delete(id uint) error {
	logger.Info("Deleting category", map[string]interface{}{
		"category_id": id,
	})

	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return err
	}
	childrenByParent := indexByParent(categories)

	subtree := []uint{id}
	for i := 0; i < len(subtree); i++ {
		for _, child := range childrenByParent[subtree[i]] {
			subtree = append(subtree, child.ID)
		}
	}

	count, err := s.categoryRepo.CountProductsByCategoryIDs(subtree)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("Category deletion blocked: products still reference the subtree", map[string]interface{}{
			"category_id":   id,
			"product_count": count,
		})
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.DeleteMany(subtree); err != nil {
		logger.Error("Failed to delete category subtree", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id":  id,
		"subtree_size": len(subtree),
	})
	return nil
}
