// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и роль.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// RoleUser и RoleAdmin — допустимые роли пользователя.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int    // Уникальный идентификатор пользователя
	Email        string // Электронная почта (уникальная)
	Username     string // Имя пользователя (уникальное)
	FirstName    string // Имя
	SecondName   string // Фамилия
	PasswordHash string // Хэш пароля пользователя
	IsActive     bool   // Активна ли учётная запись
	PhoneNumber  string // Номер телефона
	Role         string // Роль пользователя, admin или user
	AddressID    *int   // Ссылка на адрес пользователя, может отсутствовать
}

// DummyUser используется для приёма данных регистрации из JSON-запроса,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"omitempty,max=50"`
	SecondName  string `json:"second_name" validate:"omitempty,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserProfile объединяет данные пользователя и его адрес для выдачи профиля.
type UserProfile struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name,omitempty"`
	SecondName  string   `json:"second_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	IsActive    bool     `json:"is_active"`
	Role        string   `json:"role"`
	Address     *Address `json:"address,omitempty"`
}
