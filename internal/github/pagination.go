package github

import "context"

// Page — одна страница курсорного листинга.
type Page[T any] struct {
	Items       []T
	HasNextPage bool
	EndCursor   string
}

// PageFunc выполняет один шаг листинга: принимает непрозрачный курсор
// (пустая строка для первой страницы) и возвращает страницу. Шаг обязан
// переживать ответы с null-полезной нагрузкой, возвращая пустую страницу —
// отсутствие листового ресурса не ошибка.
type PageFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// WalkPages повторяет шаг листинга, накапливая элементы, пока есть
// следующая страница и присутствует курсор. limit > 0 ограничивает
// накопление: это страховка расхода API, а не требование протокола.
func WalkPages[T any](ctx context.Context, limit int, fetch PageFunc[T]) ([]T, error) {
	var items []T
	cursor := ""

	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)

		if limit > 0 && len(items) >= limit {
			items = items[:limit]
			break
		}
		if !page.HasNextPage || page.EndCursor == "" {
			break
		}
		cursor = page.EndCursor
	}

	return items, nil
}
