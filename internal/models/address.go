package models

// Address представляет почтовый адрес пользователя.
// Владение адресом один к одному: адрес привязывается к пользователю через AddressID.
type Address struct {
	ID         int     `json:"id"`                 // Уникальный идентификатор адреса
	Address1   string  `json:"address1"`           // Первая строка адреса
	Address2   *string `json:"address2,omitempty"` // Вторая строка адреса, может отсутствовать
	City       string  `json:"city"`               // Город
	State      string  `json:"state"`              // Регион
	Country    string  `json:"country"`            // Страна
	PostalCode string  `json:"postal_code"`        // Почтовый индекс
	ApartNum   int     `json:"apart_num"`          // Номер квартиры
}

// DummyAddress используется для приёма данных адреса из JSON-запроса.
type DummyAddress struct {
	Address1   string  `json:"address1" validate:"required"`
	Address2   *string `json:"address2"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	Country    string  `json:"country" validate:"required"`
	PostalCode string  `json:"postal_code" validate:"required"`
	ApartNum   int     `json:"apart_num" validate:"omitempty,gte=0"`
}
