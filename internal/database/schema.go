package database

import "secretely/internal/models"

// PersistentModels returns every model registered for schema management,
// ordered so that referenced tables are created before their dependents.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.FriendRequest{},
		&models.Post{},
		&models.Secret{},
		&models.WYR{},
		&models.Like{},
		&models.Comment{},
	}
}
