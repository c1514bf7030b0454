// @title           CareerLink API
// @version         1.0
// @description     Backend для карьерной платформы: регистрация соискателей и рекрутеров, вход, текущий пользователь.
// @host            localhost:4000
// @BasePath        /

package main

import (
	"careerlink_backend/internal/app"
	"careerlink_backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в контейнере конфигурация приходит из окружения
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, relying on environment", "error", err)
	}

	app.Run()
}
