// Package models содержит доменные структуры, описывающие задачу пользователя,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

// ToDo представляет собой основную модель задачи,
// используемую в бизнес-логике и хранилище.
type ToDo struct {
	ID          int    `json:"id"`          // Уникальный идентификатор задачи
	Title       string `json:"title"`       // Заголовок задачи
	Description string `json:"description"` // Описание задачи
	Priority    int    `json:"priority"`    // Приоритет от 1 до 5
	Complete    bool   `json:"complete"`    // Признак выполнения
	OwnerID     int    `json:"owner_id"`    // Идентификатор владельца задачи
}

// DummyToDo используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в ToDo.
type DummyToDo struct {
	Title       string `json:"title" validate:"required,min=4"`                 // Заголовок, минимум 4 символа
	Description string `json:"description" validate:"required,min=4,max=200"`   // Описание, от 4 до 200 символов
	Priority    int    `json:"priority" validate:"required,gt=0,lt=6"`          // Приоритет, строго от 1 до 5
	Complete    bool   `json:"complete"`                                        // Признак выполнения
}
