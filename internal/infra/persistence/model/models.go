// Package model holds the GORM persistence models. They never leave the infra layer;
// repositories map them to domain entities.
package model

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CategoryTreeModel{},
		&AdSlideModel{},
		&NoticeModel{},
		&HomeSectionModel{},
		&CartModel{},
		&FavoritesModel{},
	}
}
