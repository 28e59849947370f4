package votehistory

import "context"

// Direction - направление голоса пользователя
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Store - явное хранилище истории голосов: отображение
// "идентификатор отчета -> направление" на каждого клиента.
// Адаптер подменяем: in-memory для тестов, redis для продакшена.
type Store interface {
	// Set запоминает направление голоса клиента по отчету
	Set(ctx context.Context, clientID, reportID string, dir Direction) error
	// Get возвращает всю историю голосов клиента
	Get(ctx context.Context, clientID string) (map[string]Direction, error)
}
