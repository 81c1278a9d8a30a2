package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. PK is a surrogate key; ProductID is the
// business id clients use and is unique.
type ProductModel struct {
	PK            uint64         `gorm:"column:pk;primaryKey;autoIncrement"`
	ProductID     string         `gorm:"type:text;uniqueIndex;not null"`
	Title         string         `gorm:"type:text;not null"`
	SKU           string         `gorm:"column:sku;type:text;not null;default:''"`
	Price         float64        `gorm:"not null"`
	OriginalPrice *float64       ``
	DiscountRate  float64        `gorm:"not null;default:0"`
	Images        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CategoryID    string         `gorm:"type:text;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryTreeModel mirrors the 'category_trees' table; only the "default" key is used.
type CategoryTreeModel struct {
	Key       string         `gorm:"type:varchar(32);primaryKey"`
	Tree      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryTreeModel) TableName() string {
	return "category_trees"
}

// AdSlideModel mirrors the 'ad_slides' table. The numeric id is the primary key, so it is unique.
type AdSlideModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false"`
	Title    string `gorm:"type:text;not null;default:''"`
	Subtitle string `gorm:"type:text;not null;default:''"`
	Image    string `gorm:"type:text;not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (AdSlideModel) TableName() string {
	return "ad_slides"
}

// NoticeModel mirrors the 'notices' table.
type NoticeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Text string `gorm:"type:text;not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (NoticeModel) TableName() string {
	return "notices"
}

// HomeSectionModel mirrors the 'home_sections' table; only the "default" key is used.
type HomeSectionModel struct {
	Key                   string         `gorm:"type:varchar(32);primaryKey"`
	RecommendedProductIDs pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	MostVisitedProductIDs pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	TrendingProductIDs    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (HomeSectionModel) TableName() string {
	return "home_sections"
}
