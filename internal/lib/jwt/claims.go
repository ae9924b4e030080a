// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки JWT токенов с username, id и role.
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена. На HTTP-уровне все они отдаются единообразным 401,
// различие нужно только для логов и тестов.
var (
	// ErrExpired — срок действия токена истёк.
	ErrExpired = errors.New("token expired")
	// ErrInvalidSignature — подпись токена не прошла проверку.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrMalformedClaims — токен не распарсился либо обязательные claims отсутствуют.
	ErrMalformedClaims = errors.New("malformed token claims")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Методы позволяют создавать токен с указанием username, id и роли,
// а также разбирать токен и извлекать из него кастомные данные.
type Maker interface {
	// GenerateToken создает токен с username в качестве subject, id и role
	GenerateToken(username string, userID int, role string) (string, error)
	// ParseToken возвращает *CustomClaims с username, id и role
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
//
// Ключ задаётся конфигурацией при старте процесса; ротация ключа
// сводится к созданию нового MakerImpl и инвалидирует все выданные токены.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
