package contextkeys

// Используем кастомный тип, чтобы избежать коллизий с другими пакетами
type contextKey string

// DBContextKey - ключ, по которому DBMiddleware хранит *gorm.DB
// (пул соединений или тестовую транзакцию) в gin.Context
const DBContextKey = contextKey("db")
