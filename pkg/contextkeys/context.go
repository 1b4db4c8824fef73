package contextkeys

// Custom type avoids collisions with other context values.
type contextKey string

// DBContextKey is the gin context key holding the request-scoped *gorm.DB.
const DBContextKey = contextKey("db")

// CurrentUserKey is the gin context key holding the resolved *models.User.
const CurrentUserKey = contextKey("currentUser")
