package apperrors

import "net/http"

/*
Предопределенные доменные ошибки auth-потока.
Хендлеры и сервисы возвращают их как есть, HandleError
превращает в соответствующий HTTP-ответ.
*/

// ErrInvalidCredentials - неверный email или пароль.
// Сообщение нарочно одинаковое для обоих случаев, чтобы не раскрывать,
// существует ли такой email.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен отсутствует, поврежден или истек
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserNotFound - пользователь не найден
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// ErrEmailAlreadyExists - email уже занят.
// По смыслу это конфликт (409), но API отдает 400 - так ведет себя клиент.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"User with this email already exists",
	http.StatusBadRequest,
)

// ErrProfileNotFound - профиль не найден
var ErrProfileNotFound = New(
	CodeNotFound,
	"profiles",
	"Profile not found",
	http.StatusNotFound,
)
