package contextkeys

// Custom type avoids context key collisions.
type contextKey string

// DBContextKey stores the *gorm.DB handle (pool or transaction) for a request.
const DBContextKey = contextKey("db")
