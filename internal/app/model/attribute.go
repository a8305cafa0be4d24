package model

// ProductAttribute names a filterable attribute type, e.g. "Material".
type ProductAttribute struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:60;not null" json:"slug"`

	Values []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}

// AttributeValue is one discrete value of an attribute type, e.g. "Gold 18k".
type AttributeValue struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	AttributeID uint   `gorm:"not null;index" json:"attribute"`
	Value       string `gorm:"size:50;not null" json:"value"`

	Attribute ProductAttribute `gorm:"foreignKey:AttributeID" json:"-"`
}

func (AttributeValue) TableName() string {
	return "attribute_values"
}
