package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"careerlink_backend/internal/auth"
	"careerlink_backend/internal/models"
	"careerlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// decodeBody разбирает JSON-ответ в карту для проверки отдельных полей
func decodeBody(t *testing.T, body string) map[string]interface{} {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("Не удалось разобрать JSON-ответ: %v (тело: %s)", err, body)
	}
	return parsed
}

// TestRegisterJobSeeker_Student - полный цикл: регистрация студента и /me по токену
func TestRegisterJobSeeker_Student(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":      "student@test.com",
		"password":   "longenough",
		"firstName":  "A",
		"lastName":   "B",
		"seekerType": "student",
		"university": "X",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register/jobseeker", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, "Тело: %s", regBodyStr)

	parsed := decodeBody(t, regBodyStr)

	// Пароль никогда не попадает в ответ
	assert.NotContains(t, regBodyStr, "longenough")
	assert.NotContains(t, regBodyStr, "password")

	user := parsed["user"].(map[string]interface{})
	assert.Equal(t, "student@test.com", user["email"])
	assert.Equal(t, "jobseeker", user["userType"])

	jobSeeker := parsed["jobSeeker"].(map[string]interface{})
	assert.Equal(t, "student", jobSeeker["seekerType"])
	assert.Equal(t, "X", jobSeeker["university"])
	// Поля профессионала не заданы и отдаются как null
	assert.Contains(t, jobSeeker, "jobTitle")
	assert.Nil(t, jobSeeker["jobTitle"])

	token, ok := parsed["token"].(string)
	assert.True(t, ok, "Ответ должен содержать токен")
	assert.NotEmpty(t, token)

	// /me по выданному токену возвращает того же пользователя и профиль
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode, "Тело: %s", meBodyStr)

	meParsed := decodeBody(t, meBodyStr)
	meUser := meParsed["user"].(map[string]interface{})
	assert.Equal(t, user["id"], meUser["id"])
	assert.Equal(t, "student@test.com", meUser["email"])

	additionalData := meParsed["additionalData"].(map[string]interface{})
	assert.Equal(t, "student", additionalData["seekerType"])
	assert.Equal(t, "X", additionalData["university"])
}

// TestRegisterRecruiter - регистрация рекрутера и проверка профиля через /me
func TestRegisterRecruiter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":       "recruiter@test.com",
		"password":    "super_password123",
		"firstName":   "R",
		"lastName":    "C",
		"companyName": "Test Company",
		"companySize": "11-50",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register/recruiter", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, "Тело: %s", regBodyStr)

	parsed := decodeBody(t, regBodyStr)
	recruiter := parsed["recruiter"].(map[string]interface{})
	assert.Equal(t, "Test Company", recruiter["companyName"])
	assert.Equal(t, "11-50", recruiter["companySize"])

	token := parsed["token"].(string)
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)

	meParsed := decodeBody(t, meBodyStr)
	additionalData := meParsed["additionalData"].(map[string]interface{})
	assert.Equal(t, "Test Company", additionalData["companyName"])
}

// TestRegister_DuplicateEmail - повторная регистрация с тем же email отклоняется,
// количество аккаунтов не меняется
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	body := map[string]interface{}{
		"email":      "duplicate@test.com",
		"password":   "password_is_long_enough",
		"firstName":  "User",
		"lastName":   "One",
		"seekerType": "professional",
	}

	firstRes, _ := ts.SendRequest(t, "POST", "/api/auth/register/jobseeker", "", body)
	assert.Equal(t, http.StatusCreated, firstRes.StatusCode)

	// Второй раз - под другой ролью, email все равно занят
	recruiterBody := map[string]interface{}{
		"email":       "duplicate@test.com",
		"password":    "password_is_long_enough",
		"firstName":   "User",
		"lastName":    "Two",
		"companyName": "Dup Co",
	}
	secondRes, secondBodyStr := ts.SendRequest(t, "POST", "/api/auth/register/recruiter", "", recruiterBody)
	assert.Equal(t, http.StatusBadRequest, secondRes.StatusCode)
	assert.Contains(t, secondBodyStr, "already exists")

	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "duplicate@test.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestLogin_Success - вход с корректной парой возвращает токен,
// который разрешается в того же пользователя
func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	user := helpers.CreateJobSeeker(t, ts.DB, "login-ok@test.com", "correct-password", models.SeekerTypeProfessional)

	loginBody := map[string]interface{}{
		"email":    "login-ok@test.com",
		"password": "correct-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode, "Тело: %s", logBodyStr)

	parsed := decodeBody(t, logBodyStr)
	assert.Equal(t, "Login successful", parsed["message"])

	respUser := parsed["user"].(map[string]interface{})
	assert.Equal(t, user.ID, respUser["id"])

	additionalData := parsed["additionalData"].(map[string]interface{})
	assert.Equal(t, "professional", additionalData["seekerType"])

	token := parsed["token"].(string)
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, user.Email)
}

// TestLogin_BadPassword - неверный пароль дает 401 без токена
// и с тем же сообщением, что и неизвестный email
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	helpers.CreateJobSeeker(t, ts.DB, "login-bad@test.com", "correct-password", models.SeekerTypeStudent)

	badRes, badBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "login-bad@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, badRes.StatusCode)
	assert.Contains(t, badBodyStr, "Invalid email or password")
	assert.NotContains(t, badBodyStr, "token")

	unknownRes, unknownBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "no-such-user@test.com",
		"password": "whatever-password",
	})
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Contains(t, unknownBodyStr, "Invalid email or password")
}

// TestLogin_ValidationError - некорректный email отклоняется на валидации
func TestLogin_ValidationError(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "bad",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "email")
}

// TestRegister_ValidationErrors - каждое нарушенное правило попадает в ответ
func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register/jobseeker", "", map[string]interface{}{
		"email":      "not-an-email",
		"password":   "short",
		"firstName":  "",
		"lastName":   "B",
		"seekerType": "wizard",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "email")
	assert.Contains(t, bodyStr, "password")
	assert.Contains(t, bodyStr, "firstName")
	assert.Contains(t, bodyStr, "seekerType")
}

// TestRegisterRecruiter_InvalidCompanySize - значение вне фиксированного набора
func TestRegisterRecruiter_InvalidCompanySize(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/register/recruiter", "", map[string]interface{}{
		"email":       "size@test.com",
		"password":    "long_enough_pass",
		"firstName":   "S",
		"lastName":    "Z",
		"companyName": "Size Co",
		"companySize": "a-lot",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "companySize")
}

// TestMe_ExpiredToken - токен с истекшим сроком не проходит
func TestMe_ExpiredToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	user := helpers.CreateJobSeeker(t, ts.DB, "expired@test.com", "some-password1", models.SeekerTypeStudent)

	expiredToken, err := auth.GenerateTokenWithTTL(user.ID, string(user.UserType), -time.Hour)
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/auth/me", expiredToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid or expired token")
}

// TestMe_MissingOrGarbageToken - без заголовка и с мусорным токеном одинаковый 401
func TestMe_MissingOrGarbageToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	noTokenRes, _ := ts.SendRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noTokenRes.StatusCode)

	garbageRes, _ := ts.SendRequest(t, "GET", "/api/auth/me", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, garbageRes.StatusCode)
}

// TestMe_DeletedUser - валидный токен на исчезнувший аккаунт дает 401
func TestMe_DeletedUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	user := helpers.CreateJobSeeker(t, ts.DB, "ghost@test.com", "some-password1", models.SeekerTypeStudent)

	token, err := auth.GenerateToken(user.ID, string(user.UserType))
	assert.NoError(t, err)

	ts.DB.Exec("DELETE FROM job_seeker_profiles WHERE user_id = ?", user.ID)
	ts.DB.Exec("DELETE FROM users WHERE id = ?", user.ID)

	res, _ := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestPasswordStoredHashed - в БД лежит bcrypt-хеш, не исходный пароль
func TestPasswordStoredHashed(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":      "hashed@test.com",
		"password":   "plaintext-secret",
		"firstName":  "H",
		"lastName":   "S",
		"seekerType": "professional",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/auth/register/jobseeker", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var user models.User
	err := ts.DB.First(&user, "email = ?", "hashed@test.com").Error
	assert.NoError(t, err)
	assert.NotEqual(t, "plaintext-secret", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$2a$")
}
