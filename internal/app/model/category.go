package model

// Category is a node in the self-referential catalog tree.
// Deleting a category cascades to its descendants; products protect it.
type Category struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Slug       string `gorm:"uniqueIndex;size:110;not null" json:"slug"` // computed once at creation, never refreshed on rename
	Image      string `json:"image"`
	ParentID   *uint  `gorm:"index" json:"parent"`
	ShowOnHome bool   `gorm:"default:false" json:"show_on_home"`

	Parent        *Category  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Subcategories []Category `gorm:"foreignKey:ParentID" json:"-"`
	Products      []Product  `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryNode is the tree-shaped representation served to clients: the
// category's own fields plus every direct child serialized recursively.
type CategoryNode struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Image         string         `json:"image"`
	Parent        *uint          `json:"parent"`
	ShowOnHome    bool           `json:"show_on_home"`
	Subcategories []CategoryNode `json:"subcategories"`
}
