// Package policy реализует единую функцию принятия решения о доступе.
//
// Все проверки доступа в обработчиках и сервисах проходят через Authorize:
// публичные операции разрешены всегда, операции над собственным ресурсом —
// только его владельцу, административные — только роли admin.
// Любое неизвестное действие запрещено.
package policy

import "github.com/magabrotheeeer/todo-service/internal/models"

// Action перечисляет классы операций с точки зрения контроля доступа.
type Action int

const (
	// ActionPublic — операция доступна без аутентификации (регистрация, логин, health).
	ActionPublic Action = iota
	// ActionOwnerOrSelf — операция над ресурсом разрешена только его владельцу.
	// Роль admin НЕ даёт автоматического прохода этой проверки.
	ActionOwnerOrSelf
	// ActionAdminOnly — операция разрешена только пользователям с ролью admin.
	ActionAdminOnly
)

// Identity описывает аутентифицированного пользователя запроса.
// Заполняется middleware из claims токена, без обращения к хранилищу.
type Identity struct {
	UserID   int    // Идентификатор пользователя
	Username string // Имя пользователя
	Role     string // Роль, user или admin
}

// Authorize возвращает true, если identity разрешено выполнить action
// над ресурсом, принадлежащим resourceOwnerID.
//
// Для ActionPublic и ActionAdminOnly параметр resourceOwnerID игнорируется.
func Authorize(identity Identity, action Action, resourceOwnerID int) bool {
	switch action {
	case ActionPublic:
		return true
	case ActionOwnerOrSelf:
		return identity.UserID == resourceOwnerID
	case ActionAdminOnly:
		return identity.Role == models.RoleAdmin
	default:
		return false
	}
}
